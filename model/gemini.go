package model

import (
	"context"
	"fmt"

	"github.com/sokinpui/sketchsolve.go/internal/config"
	"google.golang.org/genai"
)

const ProviderGemini = "gemini"

func init() {
	RegisterProvider(ProviderGemini, newGeminiProvider)
}

func newGeminiProvider(ctx context.Context, cfg *config.Settings) (LLM, error) {
	return NewGeminiModel(ctx, cfg.Model, cfg.APIKey, cfg.GeminiBaseURL)
}

type GeminiModel struct {
	model  string
	client *genai.Client
}

// NewGeminiModel creates the genai client once. baseURL is optional and
// overrides the Gemini API endpoint.
func NewGeminiModel(ctx context.Context, modelCode, apiKey, baseURL string) (*GeminiModel, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key is required for generation", ErrConfiguration)
	}

	cc := &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiModel{
		model:  modelCode,
		client: client,
	}, nil
}

func (m *GeminiModel) ModelCode() string {
	return m.model
}

// Generate performs a single non-streaming generation call.
func (m *GeminiModel) Generate(ctx context.Context, parts []Part, config *Config) (string, error) {
	resp, err := m.client.Models.GenerateContent(ctx, m.model, buildContent(parts), getGenConfig(config))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no content in response", ErrUnexpectedResponse)
	}

	return resp.Text(), nil
}

func buildContent(parts []Part) []*genai.Content {
	gparts := make([]*genai.Part, 0, len(parts))
	for _, p := range parts {
		if p.IsBlob() {
			gparts = append(gparts, genai.NewPartFromBytes(p.Data, p.MIMEType))
			continue
		}
		gparts = append(gparts, genai.NewPartFromText(p.Text))
	}

	return []*genai.Content{
		genai.NewContentFromParts(gparts, genai.RoleUser),
	}
}

func getGenConfig(config *Config) *genai.GenerateContentConfig {
	if config == nil {
		return &genai.GenerateContentConfig{}
	}

	return &genai.GenerateContentConfig{
		Temperature:      config.Temperature,
		TopP:             config.TopP,
		TopK:             config.TopK,
		MaxOutputTokens:  config.OutputLength,
		ResponseMIMEType: config.ResponseMIMEType,
	}
}
