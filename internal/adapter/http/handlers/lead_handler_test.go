package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"aurora_motors/internal/adapter/http/handlers/mocks"
	"aurora_motors/internal/domain/entities"
	"aurora_motors/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestLeadHandler_CreateLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		r := gin.New()
		r.POST("/leads", NewLeadHandler(uc).CreateLead)

		req := httptest.NewRequest(http.MethodPost, "/leads", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("invalid email never reaches usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		r := gin.New()
		r.POST("/leads", NewLeadHandler(uc).CreateLead)

		req := httptest.NewRequest(http.MethodPost, "/leads", bytes.NewBufferString(`{"lead_type":"contact","name":"Ada","email":"not-an-email"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("unknown lead type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		r := gin.New()
		r.POST("/leads", NewLeadHandler(uc).CreateLead)

		req := httptest.NewRequest(http.MethodPost, "/leads", bytes.NewBufferString(`{"lead_type":"newsletter","name":"Ada","email":"ada@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("storage unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		r := gin.New()
		r.POST("/leads", NewLeadHandler(uc).CreateLead)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return("", interfaces.ErrStorageUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/leads", bytes.NewBufferString(`{"lead_type":"contact","name":"Ada","email":"ada@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		r := gin.New()
		r.POST("/leads", NewLeadHandler(uc).CreateLead)

		want := entities.Lead{
			LeadType:      entities.LeadTypeTestDrive,
			Name:          "Ada",
			Email:         "ada@example.com",
			ModelSlug:     "aurora-flux",
			Configuration: map[string]any{"color": "Glacier White"},
		}
		uc.EXPECT().Submit(gomock.Any(), want).Return("lead-1", nil)

		req := httptest.NewRequest(http.MethodPost, "/leads", bytes.NewBufferString(`{"lead_type":"test-drive","name":"Ada","email":"ada@example.com","model_slug":"aurora-flux","configuration":{"color":"Glacier White"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["id"] != "lead-1" || body["status"] != "received" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
