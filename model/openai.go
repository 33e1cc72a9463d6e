package model

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"
	"github.com/sokinpui/sketchsolve.go/internal/config"
)

const ProviderOpenAI = "openai"

func init() {
	RegisterProvider(ProviderOpenAI, newOpenAIProvider)
}

func newOpenAIProvider(_ context.Context, cfg *config.Settings) (LLM, error) {
	return NewOpenAIModel(cfg.OpenAIModel, cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
}

// OpenAIModel talks to the Responses API. Images travel as base64 data URLs.
type OpenAIModel struct {
	model  string
	client openai.Client
}

func NewOpenAIModel(modelCode, apiKey, baseURL string) (*OpenAIModel, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key is required for generation", ErrConfiguration)
	}

	// One upstream call per request: the SDK would otherwise retry 429 and 5xx.
	opts := []option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAIModel{
		model:  modelCode,
		client: openai.NewClient(opts...),
	}, nil
}

func (m *OpenAIModel) ModelCode() string {
	return m.model
}

func (m *OpenAIModel) Generate(ctx context.Context, parts []Part, config *Config) (string, error) {
	content := make(responses.ResponseInputMessageContentListParam, len(parts))
	for i, p := range parts {
		if p.IsBlob() {
			content[i].OfInputImage = &responses.ResponseInputImageParam{
				Detail:   responses.ResponseInputImageDetailAuto,
				ImageURL: openai.String(dataURL(p)),
			}
			continue
		}
		content[i].OfInputText = &responses.ResponseInputTextParam{Text: p.Text}
	}

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(m.model),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: responses.ResponseInputParam{
				responses.ResponseInputItemParamOfMessage(content, responses.EasyInputMessageRoleUser),
			},
		},
	}
	// TopK and the response MIME type have no Responses API counterpart.
	if config != nil {
		if config.Temperature != nil {
			params.Temperature = openai.Float(float64(*config.Temperature))
		}
		if config.TopP != nil {
			params.TopP = openai.Float(float64(*config.TopP))
		}
		if config.OutputLength > 0 {
			params.MaxOutputTokens = openai.Int(int64(config.OutputLength))
		}
	}

	resp, err := m.client.Responses.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	if resp == nil || len(resp.Output) == 0 {
		return "", fmt.Errorf("%w: no output in response", ErrUnexpectedResponse)
	}

	return resp.OutputText(), nil
}

func dataURL(p Part) string {
	return fmt.Sprintf("data:%s;base64,%s", p.MIMEType, base64.StdEncoding.EncodeToString(p.Data))
}
