package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"aurora_motors/internal/adapter/http/handlers"
	"aurora_motors/internal/adapter/persistence/documentstore"
	"aurora_motors/internal/adapter/persistence/repository"
	"aurora_motors/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(store documentstore.Store, opts Options) *gin.Engine {
	models := repository.NewCarModelRepository(store)
	promotions := repository.NewPromotionRepository(store)
	dealers := repository.NewDealerRepository(store)
	leads := repository.NewLeadRepository(store)

	return NewRouter(Handlers{
		Catalog: handlers.NewCatalogHandler(usecase.NewCatalogUseCase(models, promotions, dealers)),
		Leads:   handlers.NewLeadHandler(usecase.NewLeadUseCase(leads)),
		Pricing: handlers.NewPricingHandler(usecase.NewPricingUseCase(models)),
		System:  handlers.NewSystemHandler(usecase.NewDiagnosticsUseCase(store), usecase.NewSeedUseCase(models, promotions)),
	}, opts)
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_SeededCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newTestRouter(documentstore.NewMemoryStore("aurora"), Options{})

	w := do(r, http.MethodPost, "/seed", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"inserted":4}`, w.Body.String())

	w = do(r, http.MethodPost, "/seed", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"inserted":0}`, w.Body.String())

	w = do(r, http.MethodGet, "/models?body_type=SUV", "")
	require.Equal(t, http.StatusOK, w.Code)
	var suvs []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &suvs))
	require.Len(t, suvs, 1)
	assert.Equal(t, "Aurora Trail", suvs[0]["name"])
	assert.NotContains(t, suvs[0], "id")

	w = do(r, http.MethodGet, "/models/aurora-flux", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/models/aurora-zero", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/promotions", "")
	require.Equal(t, http.StatusOK, w.Code)
	var promos []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &promos))
	assert.Len(t, promos, 2)

	w = do(r, http.MethodPost, "/config/price", `{"model_slug":"aurora-flux","variant":"Performance","color":"Glacier White","wheels":"20\" Sport"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"base":52999,"extras":1200,"total":54199}`, w.Body.String())

	w = do(r, http.MethodPost, "/config/price", `{"model_slug":"aurora-zero"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_Leads(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := documentstore.NewMemoryStore("aurora")
	r := newTestRouter(store, Options{})

	w := do(r, http.MethodPost, "/leads", `{"lead_type":"contact","name":"Ada","email":"nope"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	n, err := store.Count(context.Background(), "lead")
	require.NoError(t, err)
	assert.Zero(t, n)

	w = do(r, http.MethodPost, "/leads", `{"lead_type":"quote","name":"Ada","email":"ada@example.com","model_slug":"aurora-trail"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "received", body["status"])

	n, err = store.Count(context.Background(), "lead")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRouter_StorageDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newTestRouter(documentstore.DisabledStore{}, Options{})

	w := do(r, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Aurora Motors API running"}`, w.Body.String())

	w = do(r, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, w.Code)
	var diag map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &diag))
	assert.Equal(t, "not connected", diag["connection_status"])
	assert.Nil(t, diag["database_url"])

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodPost, "/seed", ""},
		{http.MethodGet, "/models", ""},
		{http.MethodGet, "/models/aurora-flux", ""},
		{http.MethodGet, "/promotions", ""},
		{http.MethodGet, "/dealers?city=Spring", ""},
		{http.MethodPost, "/leads", `{"lead_type":"contact","name":"Ada","email":"ada@example.com"}`},
		{http.MethodPost, "/config/price", `{"model_slug":"aurora-flux"}`},
	} {
		w := do(r, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRouter_CORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("any origin", func(t *testing.T) {
		r := newTestRouter(documentstore.DisabledStore{}, Options{AllowedOrigins: []string{"*"}})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://aurora.example")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("restricted origins", func(t *testing.T) {
		r := newTestRouter(documentstore.DisabledStore{}, Options{AllowedOrigins: []string{"https://aurora.example"}})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
