package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/sokinpui/sketchsolve.go/internal/models"
	"github.com/sokinpui/sketchsolve.go/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	_, api := humatest.New(t)
	RegisterAPIRoutes(api, model.NewWith(nil), "gemini")

	resp := api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok"}`, stripSchema(t, resp.Body.Bytes()))
}

func TestListModels(t *testing.T) {
	tests := []struct {
		name     string
		registry *model.Registry
		want     []models.ProviderInfo
	}{
		{
			name:     "no providers",
			registry: model.NewWith(nil),
			want:     []models.ProviderInfo{},
		},
		{
			name:     "sorted providers",
			registry: model.NewWith(map[string]model.LLM{"openai": &MockLLM{}, "gemini": &MockLLM{}}),
			want: []models.ProviderInfo{
				{Name: "gemini", Model: "mock-1", Available: true},
				{Name: "openai", Model: "mock-1", Available: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, api := humatest.New(t)
			RegisterAPIRoutes(api, tt.registry, "gemini")

			resp := api.Get("/models")
			require.Equal(t, http.StatusOK, resp.Code)

			var body struct {
				Active    string                `json:"active"`
				Providers []models.ProviderInfo `json:"providers"`
			}
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			assert.Equal(t, "gemini", body.Active)
			assert.NotNil(t, body.Providers)
			assert.Equal(t, tt.want, body.Providers)
		})
	}
}

// stripSchema drops the $schema link huma adds to response bodies.
func stripSchema(t *testing.T, raw []byte) string {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	delete(m, "$schema")
	out, err := json.Marshal(m)
	require.NoError(t, err)
	return string(out)
}
