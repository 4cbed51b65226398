package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"aurora_motors/internal/adapter/http/handlers/mocks"
	"aurora_motors/internal/domain/entities"
	"aurora_motors/internal/usecase"
	"aurora_motors/internal/usecase/interfaces"
	"aurora_motors/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCatalogRouter(h *CatalogHandler) *gin.Engine {
	r := gin.New()
	r.GET("/models", h.ListModels)
	r.GET("/models/:slug", h.GetModel)
	r.GET("/promotions", h.ListPromotions)
	r.GET("/dealers", h.ListDealers)
	return r
}

func TestCatalogHandler_ListModels(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("filters are forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(NewCatalogHandler(uc))

		uc.EXPECT().ListModels(gomock.Any(), entities.ModelFilter{BodyType: "SUV"}).Return([]entities.CarModel{{Name: "Aurora Trail", Slug: "aurora-trail", BodyType: "SUV"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/models?body_type=SUV", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body) != 1 || body[0]["slug"] != "aurora-trail" {
			t.Fatalf("unexpected body: %v", body)
		}
		if _, ok := body[0]["id"]; ok {
			t.Fatalf("id must not be exposed: %v", body[0])
		}
	})

	t.Run("storage unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(NewCatalogHandler(uc))

		uc.EXPECT().ListModels(gomock.Any(), entities.ModelFilter{}).Return(nil, interfaces.ErrStorageUnavailable)

		req := httptest.NewRequest(http.MethodGet, "/models", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
		var body pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Code != "STORAGE_UNAVAILABLE" {
			t.Fatalf("unexpected error body: %+v", body)
		}
	})
}

func TestCatalogHandler_GetModel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(NewCatalogHandler(uc))

		uc.EXPECT().GetModelBySlug(gomock.Any(), "aurora-zero").Return(entities.CarModel{}, usecase.ErrModelNotFound)

		req := httptest.NewRequest(http.MethodGet, "/models/aurora-zero", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("unexpected error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(NewCatalogHandler(uc))

		uc.EXPECT().GetModelBySlug(gomock.Any(), "aurora-flux").Return(entities.CarModel{}, errors.New("boom"))

		req := httptest.NewRequest(http.MethodGet, "/models/aurora-flux", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(NewCatalogHandler(uc))

		uc.EXPECT().GetModelBySlug(gomock.Any(), "aurora-flux").Return(entities.CarModel{Name: "Aurora Flux", Slug: "aurora-flux", Published: true}, nil)

		req := httptest.NewRequest(http.MethodGet, "/models/aurora-flux", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body entities.CarModel
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Name != "Aurora Flux" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestCatalogHandler_ListPromotions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	r := newCatalogRouter(NewCatalogHandler(uc))

	uc.EXPECT().ListPromotions(gomock.Any()).Return([]entities.Promotion{{Title: "0.9% APR", Active: true}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/promotions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestCatalogHandler_ListDealers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("city and zip forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(NewCatalogHandler(uc))

		uc.EXPECT().ListDealers(gomock.Any(), entities.DealerFilter{City: "Spring", Zip: "62701"}).Return([]entities.Dealer{{Name: "Aurora Springfield", City: "Springfield"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/dealers?city=Spring&zip=62701", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("storage unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(NewCatalogHandler(uc))

		uc.EXPECT().ListDealers(gomock.Any(), gomock.Any()).Return(nil, interfaces.ErrStorageUnavailable)

		req := httptest.NewRequest(http.MethodGet, "/dealers", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
