package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"realtors/internal/api"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestV1Spec_DocumentsRoutes keeps the published OpenAPI document in step with the router.
func TestV1Spec_DocumentsRoutes(t *testing.T) {
	h, _ := newTestHandler(t, api.Deps{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/specs/v1.yaml", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var doc struct {
		OpenAPI string                    `yaml:"openapi"`
		Paths   map[string]map[string]any `yaml:"paths"`
	}
	require.NoError(t, yaml.Unmarshal(rec.Body.Bytes(), &doc))
	require.Equal(t, "3.0.3", doc.OpenAPI)

	routes := map[string][]string{
		"/highlights":         {"get"},
		"/realtors":           {"get", "post"},
		"/realtors/create":    {"get"},
		"/realtors/{id}":      {"get", "put", "delete"},
		"/realtors/{id}/edit": {"get"},
	}
	for path, methods := range routes {
		item, ok := doc.Paths[path]
		require.True(t, ok, "path %s is not documented", path)
		for _, m := range methods {
			require.Contains(t, item, m, "%s %s is not documented", m, path)
		}
	}
}
