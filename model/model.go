package model

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/sokinpui/sketchsolve.go/internal/config"
)

// LLM is a single-shot text generator. Implementations must be safe for
// concurrent use; one instance serves every request for the process lifetime.
type LLM interface {
	Generate(ctx context.Context, parts []Part, config *Config) (string, error)
	ModelCode() string
}

// ModelProvider builds the LLM for one provider from the loaded settings.
// It returns an error wrapping ErrConfiguration when credentials are missing.
type ModelProvider func(ctx context.Context, cfg *config.Settings) (LLM, error)

var providers = map[string]ModelProvider{}

func RegisterProvider(name string, provider ModelProvider) {
	providers[name] = provider
}

// ProviderStatus describes one registered provider.
type ProviderStatus struct {
	Name      string
	Model     string
	Available bool
	Reason    string
}

type Registry struct {
	models      map[string]LLM
	unavailable map[string]error
}

// New constructs every registered provider. Providers that lack credentials
// are recorded as unavailable rather than failing the whole registry.
func New(ctx context.Context, cfg *config.Settings) (*Registry, error) {
	r := &Registry{
		models:      make(map[string]LLM),
		unavailable: make(map[string]error),
	}
	for name, provider := range providers {
		llm, err := provider(ctx, cfg)
		if err != nil {
			if errors.Is(err, ErrConfiguration) {
				r.unavailable[name] = err
				continue
			}
			return nil, fmt.Errorf("failed to initialize provider %q: %w", name, err)
		}
		r.models[name] = llm
	}
	return r, nil
}

// NewWith builds a registry from already constructed models.
func NewWith(models map[string]LLM) *Registry {
	r := &Registry{
		models:      make(map[string]LLM, len(models)),
		unavailable: make(map[string]error),
	}
	for name, llm := range models {
		r.models[name] = llm
	}
	return r
}

func (r *Registry) Get(name string) (LLM, error) {
	if llm, ok := r.models[name]; ok {
		return llm, nil
	}
	if err, ok := r.unavailable[name]; ok {
		return nil, fmt.Errorf("provider %q unavailable: %w", name, err)
	}
	return nil, fmt.Errorf("%w: %s", ErrProviderNotFound, name)
}

// List returns the status of every provider, sorted by name.
func (r *Registry) List() []ProviderStatus {
	out := make([]ProviderStatus, 0, len(r.models)+len(r.unavailable))
	for name, llm := range r.models {
		out = append(out, ProviderStatus{Name: name, Model: llm.ModelCode(), Available: true})
	}
	for name, err := range r.unavailable {
		out = append(out, ProviderStatus{Name: name, Reason: err.Error()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
