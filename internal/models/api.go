package models

// HealthOutput is returned by GET /health.
type HealthOutput struct {
	Body struct {
		Status string `json:"status" doc:"Always ok while the process serves requests" example:"ok"`
	}
}

type ProviderInfo struct {
	Name      string `json:"name" doc:"Provider name" example:"gemini"`
	Model     string `json:"model,omitempty" doc:"Model code used for generation" example:"gemini-2.5-flash"`
	Available bool   `json:"available" doc:"Whether the provider has usable credentials"`
	Reason    string `json:"reason,omitempty" doc:"Why the provider is unavailable"`
}

// ModelsOutput is returned by GET /models.
type ModelsOutput struct {
	Body struct {
		Active    string         `json:"active" doc:"Provider serving /calculate and /generate" example:"gemini"`
		Providers []ProviderInfo `json:"providers" doc:"All registered providers"`
	}
}
