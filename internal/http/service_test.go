package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apicontract "github.com/tuanvumaihuynh/parts-inventory/api-contract"
	"github.com/tuanvumaihuynh/parts-inventory/internal/config"
	httpsvc "github.com/tuanvumaihuynh/parts-inventory/internal/http"
	"github.com/tuanvumaihuynh/parts-inventory/internal/http/apierr"
	"github.com/tuanvumaihuynh/parts-inventory/internal/repository"
	"github.com/tuanvumaihuynh/parts-inventory/internal/service"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	repo, err := repository.NewPartRepository(repository.ExampleParts()...)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	partSvc := service.NewPartService(logger, repo)

	svc, err := httpsvc.New(
		config.HTTP{Port: 8000, Swagger: true},
		config.Cors{
			AllowedOrigins: []string{"http://localhost:3000"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		},
		logger,
		partSvc,
	)
	require.NoError(t, err)

	h, err := svc.Handler()
	require.NoError(t, err)

	return h
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	return resp
}

func decodeParts(t *testing.T, resp *httptest.ResponseRecorder) []httpsvc.PartResponse {
	t.Helper()

	var parts []httpsvc.PartResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &parts))
	return parts
}

func ids(parts []httpsvc.PartResponse) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.ID
	}
	return out
}

func TestGetRoot(t *testing.T) {
	h := newTestHandler(t)

	resp := do(t, h, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"message":"Vehicle Parts Inventory System API"}`, resp.Body.String())
}

func TestListParts(t *testing.T) {
	h := newTestHandler(t)

	resp := do(t, h, http.MethodGet, "/api/parts", "")

	require.Equal(t, http.StatusOK, resp.Code)
	parts := decodeParts(t, resp)
	assert.Equal(t, []string{"O1", "A2", "B3", "S4", "W5", "A6", "C7"}, ids(parts))
	assert.Equal(t, httpsvc.PartResponse{
		ID:            "O1",
		Name:          "Oil Filter",
		PartType:      "Engine",
		CarModel:      "Toyota Camry 2020",
		Stock:         50,
		MinStockLevel: 20,
	}, parts[0])
}

func TestListRestockAlerts(t *testing.T) {
	h := newTestHandler(t)

	resp := do(t, h, http.MethodGet, "/api/alerts", "")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, []string{"A2", "S4", "C7"}, ids(decodeParts(t, resp)))
}

func TestCreatePart(t *testing.T) {
	t.Run("Should create part and surface it in alerts", func(t *testing.T) {
		h := newTestHandler(t)

		resp := do(t, h, http.MethodPost, "/api/parts",
			`{"name":"Battery","part_type":"Electrical","car_model":"Test","stock":5,"min_stock_level":10}`)
		require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

		var created httpsvc.PartResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Battery", created.Name)
		assert.Equal(t, 5, created.Stock)
		assert.Equal(t, 10, created.MinStockLevel)

		all := decodeParts(t, do(t, h, http.MethodGet, "/api/parts", ""))
		assert.Len(t, all, 8)

		alerts := decodeParts(t, do(t, h, http.MethodGet, "/api/alerts", ""))
		assert.Contains(t, alerts, created)
	})

	t.Run("Should ignore client id and default threshold", func(t *testing.T) {
		h := newTestHandler(t)

		resp := do(t, h, http.MethodPost, "/api/parts",
			`{"id":"O1","name":"Fuse","part_type":"Electrical","car_model":"Any","stock":100}`)
		require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

		var created httpsvc.PartResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
		assert.NotEqual(t, "O1", created.ID)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, 20, created.MinStockLevel)
	})

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"name":`},
		{name: "empty body", body: ""},
		{name: "wrong type", body: `{"name":"Fuse","part_type":"E","car_model":"Any","stock":"many"}`},
		{name: "missing stock", body: `{"name":"Fuse","part_type":"E","car_model":"Any"}`},
		{name: "missing name", body: `{"part_type":"E","car_model":"Any","stock":1}`},
		{name: "negative stock", body: `{"name":"Fuse","part_type":"E","car_model":"Any","stock":-1}`},
		{name: "trailing garbage", body: `{"name":"Z","part_type":"E","car_model":"A","stock":1} garbage`},
		{name: "trailing json value", body: `{"name":"Z","part_type":"E","car_model":"A","stock":1}{"junk":1}`},
		{name: "negative threshold", body: `{"name":"Fuse","part_type":"E","car_model":"Any","stock":1,"min_stock_level":-1}`},
	}

	for _, tt := range tests {
		t.Run("Should reject "+tt.name, func(t *testing.T) {
			h := newTestHandler(t)

			resp := do(t, h, http.MethodPost, "/api/parts", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.Code, resp.Body.String())

			var res apierr.ErrorResponse
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &res))
			assert.Equal(t, "VALIDATION_FAILED", res.Code)

			assert.Len(t, decodeParts(t, do(t, h, http.MethodGet, "/api/parts", "")), 7)
		})
	}

	t.Run("Should report field details", func(t *testing.T) {
		h := newTestHandler(t)

		resp := do(t, h, http.MethodPost, "/api/parts", `{"part_type":"E","car_model":"Any","stock":1}`)

		var res apierr.ErrorResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &res))
		require.NotNil(t, res.Details)
		assert.Equal(t, []apierr.FieldError{{Field: "name", Message: "field is required"}}, *res.Details)
	})
}

func TestUpdatePartStock(t *testing.T) {
	t.Run("Should update stock and surface part in alerts", func(t *testing.T) {
		h := newTestHandler(t)

		resp := do(t, h, http.MethodPut, "/api/parts/O1?new_stock=0", "")
		require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

		var updated httpsvc.PartResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &updated))
		assert.Equal(t, httpsvc.PartResponse{
			ID:            "O1",
			Name:          "Oil Filter",
			PartType:      "Engine",
			CarModel:      "Toyota Camry 2020",
			Stock:         0,
			MinStockLevel: 20,
		}, updated)

		assert.Contains(t, ids(decodeParts(t, do(t, h, http.MethodGet, "/api/alerts", ""))), "O1")
	})

	t.Run("Should be idempotent", func(t *testing.T) {
		h := newTestHandler(t)

		first := do(t, h, http.MethodPut, "/api/parts/B3?new_stock=3", "")
		second := do(t, h, http.MethodPut, "/api/parts/B3?new_stock=3", "")
		assert.Equal(t, http.StatusOK, second.Code)
		assert.JSONEq(t, first.Body.String(), second.Body.String())
	})

	t.Run("Should return 404 for unknown part", func(t *testing.T) {
		h := newTestHandler(t)
		before := do(t, h, http.MethodGet, "/api/parts", "").Body.String()

		resp := do(t, h, http.MethodPut, "/api/parts/does-not-exist?new_stock=5", "")

		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.JSONEq(t, `{"code":"PART_NOT_FOUND","message":"part not found"}`, resp.Body.String())
		assert.JSONEq(t, before, do(t, h, http.MethodGet, "/api/parts", "").Body.String())
	})

	for name, target := range map[string]string{
		"missing new_stock":  "/api/parts/O1",
		"invalid new_stock":  "/api/parts/O1?new_stock=lots",
		"negative new_stock": "/api/parts/O1?new_stock=-4",
	} {
		t.Run("Should reject "+name, func(t *testing.T) {
			h := newTestHandler(t)

			resp := do(t, h, http.MethodPut, target, "")
			assert.Equal(t, http.StatusUnprocessableEntity, resp.Code, resp.Body.String())
		})
	}
}

func TestRouting(t *testing.T) {
	h := newTestHandler(t)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/unknown", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, h, http.MethodDelete, "/api/parts", "").Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/healthz", "").Code)

	metrics := do(t, h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), "parts_inventory_http_requests_total")
}

func TestRoutesAreDocumented(t *testing.T) {
	doc, err := apicontract.Load(context.Background())
	require.NoError(t, err)

	router, ok := newTestHandler(t).(chi.Routes)
	require.True(t, ok)

	err = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if strings.HasPrefix(route, "/docs") {
			return nil
		}

		item := doc.Paths.Find(route)
		if assert.NotNil(t, item, route) {
			assert.NotNil(t, item.GetOperation(method), "%s %s", method, route)
		}
		return nil
	})
	require.NoError(t, err)
}
