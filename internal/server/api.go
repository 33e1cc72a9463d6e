package server

import (
	"context"
	"net/http"

	huma "github.com/danielgtaylor/huma/v2"
	"github.com/sokinpui/sketchsolve.go/internal/models"
	"github.com/sokinpui/sketchsolve.go/model"
)

// RegisterAPIRoutes adds the auxiliary JSON endpoints. The relay endpoints
// themselves speak plain text and live on the raw mux.
func RegisterAPIRoutes(api huma.API, registry *model.Registry, active string) {
	huma.Register(api, huma.Operation{
		OperationID: "getHealth",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Report service health",
		Tags:        []string{"system"},
	}, func(ctx context.Context, _ *struct{}) (*models.HealthOutput, error) {
		out := &models.HealthOutput{}
		out.Body.Status = "ok"
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "listModels",
		Method:      http.MethodGet,
		Path:        "/models",
		Summary:     "List generation providers",
		Tags:        []string{"system"},
	}, func(ctx context.Context, _ *struct{}) (*models.ModelsOutput, error) {
		out := &models.ModelsOutput{}
		out.Body.Active = active
		out.Body.Providers = []models.ProviderInfo{}
		for _, p := range registry.List() {
			out.Body.Providers = append(out.Body.Providers, models.ProviderInfo{
				Name:      p.Name,
				Model:     p.Model,
				Available: p.Available,
				Reason:    p.Reason,
			})
		}
		return out, nil
	})
}
