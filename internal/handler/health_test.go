package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pkordes/travel-planner/internal/handler"
	"github.com/pkordes/travel-planner/spec"
)

// TestGetHealth_returns200WithOKStatus verifies that GET /healthz returns
// HTTP 200 and a JSON body of {"status":"ok"} without starting a session.
func TestGetHealth_returns200WithOKStatus(t *testing.T) {
	c := newClient(t)

	rec := c.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "ok", body.Status)
	assert.Zero(t, c.store.Len())
}

func TestGetOpenAPI(t *testing.T) {
	c := newClient(t)

	rec := c.do(httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	assert.Equal(t, spec.OpenAPI, rec.Body.Bytes())
}

// TestOpenAPI_DocumentsEveryRoute walks the router and checks each route
// and method appears in the embedded document.
func TestOpenAPI_DocumentsEveryRoute(t *testing.T) {
	var doc struct {
		Paths map[string]map[string]any `yaml:"paths"`
	}
	require.NoError(t, yaml.Unmarshal(spec.OpenAPI, &doc))

	router := handler.NewRouter(handler.RouterConfig{})
	var routes int
	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes++
		ops, ok := doc.Paths[route]
		if assert.True(t, ok, "route %s undocumented", route) {
			assert.Contains(t, ops, strings.ToLower(method), "%s %s undocumented", method, route)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, len(doc.Paths), routes, "every documented path is routed")
}
