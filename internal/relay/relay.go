// Package relay turns validated user input into exactly one generation call
// and hands back the provider's text untouched.
package relay

import (
	"context"
	"errors"
	"fmt"

	"github.com/sokinpui/sketchsolve.go/internal/prompt"
	"github.com/sokinpui/sketchsolve.go/model"
	"go.uber.org/zap"
)

var (
	ErrMissingImage = errors.New("no image file uploaded")
	ErrMissingText  = errors.New("text field is required")
)

// IsClientError reports whether err was caused by missing request input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrMissingImage) || errors.Is(err, ErrMissingText)
}

// Image is an uploaded image with its declared media type.
type Image struct {
	Data      []byte
	MediaType string
}

type Service struct {
	llm    model.LLM
	logger *zap.SugaredLogger
}

func New(llm model.LLM, logger *zap.SugaredLogger) *Service {
	return &Service{llm: llm, logger: logger}
}

// Solve asks the model for the final answer to the problem in img.
func (s *Service) Solve(ctx context.Context, img *Image) (string, error) {
	// A zero-byte upload has nothing to solve and is rejected like a missing
	// file, before any model call.
	if img == nil || len(img.Data) == 0 {
		return "", ErrMissingImage
	}

	text, err := s.llm.Generate(ctx, prompt.Solve(img.Data, img.MediaType), nil)
	if err != nil {
		return "", fmt.Errorf("solve: %w", err)
	}
	s.logger.Debugw("Solve result", "model", s.llm.ModelCode(), "text", text)
	return text, nil
}

// Draw asks the model for drawing elements matching text. The output is
// expected to be a JSON array but is returned as-is.
func (s *Service) Draw(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", ErrMissingText
	}

	out, err := s.llm.Generate(ctx, prompt.Drawing(text), prompt.DrawingConfig())
	if err != nil {
		return "", fmt.Errorf("draw: %w", err)
	}
	return out, nil
}
