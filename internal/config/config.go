package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Settings holds the relay configuration. Every key is read only under the
// SKETCHSOLVE_ prefix; the API keys alone also accept their bare names.
type Settings struct {
	Provider string `envconfig:"SKETCHSOLVE_PROVIDER" default:"gemini"`

	APIKey        string `envconfig:"SKETCHSOLVE_API_KEY"`
	Model         string `envconfig:"SKETCHSOLVE_MODEL" default:"gemini-2.5-flash"`
	GeminiBaseURL string `envconfig:"SKETCHSOLVE_GEMINI_BASE_URL"`

	OpenAIAPIKey  string `envconfig:"SKETCHSOLVE_OPENAI_API_KEY"`
	OpenAIModel   string `envconfig:"SKETCHSOLVE_OPENAI_MODEL" default:"gpt-4o"`
	OpenAIBaseURL string `envconfig:"SKETCHSOLVE_OPENAI_BASE_URL"`

	UploadDir      string        `envconfig:"SKETCHSOLVE_UPLOAD_DIR" default:"uploads"`
	MaxUploadBytes int64         `envconfig:"SKETCHSOLVE_MAX_UPLOAD_BYTES" default:"20971520"`
	SweepSchedule  string        `envconfig:"SKETCHSOLVE_SWEEP_SCHEDULE" default:"@every 10m"`
	SweepTTL       time.Duration `envconfig:"SKETCHSOLVE_SWEEP_TTL" default:"15m"`
}

// legacyKeys are the unprefixed credential variables.
type legacyKeys struct {
	APIKey       string `envconfig:"API_KEY"`
	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY"`
}

// Load reads an optional .env file and then the environment.
func Load() (*Settings, error) {
	_ = godotenv.Load()

	// Tags carry the full variable names, so no prefix is passed.
	var s Settings
	if err := envconfig.Process("", &s); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	var legacy legacyKeys
	if err := envconfig.Process("", &legacy); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if s.APIKey == "" {
		s.APIKey = legacy.APIKey
	}
	if s.OpenAIAPIKey == "" {
		s.OpenAIAPIKey = legacy.OpenAIAPIKey
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) Validate() error {
	if s.Provider == "" {
		return fmt.Errorf("provider must not be empty")
	}
	if s.UploadDir == "" {
		return fmt.Errorf("upload dir must not be empty")
	}
	if s.MaxUploadBytes < 0 {
		return fmt.Errorf("max upload bytes must not be negative, got %d", s.MaxUploadBytes)
	}
	if s.SweepTTL <= 0 {
		return fmt.Errorf("sweep ttl must be positive, got %s", s.SweepTTL)
	}
	return nil
}
