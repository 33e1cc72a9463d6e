package relay

import (
	"context"
	"errors"
	"testing"

	"github.com/sokinpui/sketchsolve.go/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockLLM is a mock implementation of the model.LLM interface.
type MockLLM struct{ mock.Mock }

func (m *MockLLM) Generate(ctx context.Context, parts []model.Part, config *model.Config) (string, error) {
	args := m.Called(ctx, parts, config)
	return args.String(0), args.Error(1)
}

func (m *MockLLM) ModelCode() string { return "mock-1" }

func newService(llm model.LLM) *Service {
	return New(llm, zap.NewNop().Sugar())
}

func TestSolve(t *testing.T) {
	llm := &MockLLM{}
	llm.On("Generate", mock.Anything, mock.MatchedBy(func(parts []model.Part) bool {
		return len(parts) == 2 && parts[1].MIMEType == "image/png" && string(parts[1].Data) == "png"
	}), (*model.Config)(nil)).Return("42", nil).Once()

	text, err := newService(llm).Solve(context.Background(), &Image{Data: []byte("png"), MediaType: "image/png"})
	require.NoError(t, err)
	assert.Equal(t, "42", text)
	llm.AssertExpectations(t)
}

func TestSolveMissingImage(t *testing.T) {
	tests := []struct {
		name string
		img  *Image
	}{
		{name: "nil image", img: nil},
		{name: "empty data", img: &Image{MediaType: "image/png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm := &MockLLM{}
			_, err := newService(llm).Solve(context.Background(), tt.img)
			assert.True(t, errors.Is(err, ErrMissingImage))
			assert.True(t, IsClientError(err))
			llm.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSolveUpstreamError(t *testing.T) {
	llm := &MockLLM{}
	llm.On("Generate", mock.Anything, mock.Anything, mock.Anything).
		Return("", model.ErrUnexpectedResponse).Once()

	_, err := newService(llm).Solve(context.Background(), &Image{Data: []byte("png"), MediaType: "image/png"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrUnexpectedResponse))
	assert.False(t, IsClientError(err))
}

func TestDraw(t *testing.T) {
	const elements = `[{"type":"rectangle","id":"car-body"},{"type":"ellipse","id":"wheel-1"}]`

	llm := &MockLLM{}
	llm.On("Generate", mock.Anything, mock.MatchedBy(func(parts []model.Part) bool {
		return len(parts) == 3 && parts[1].Text == "input: a red car" && parts[2].Text == "output: "
	}), mock.MatchedBy(func(cfg *model.Config) bool {
		return cfg != nil && cfg.OutputLength == 8192 && cfg.ResponseMIMEType == "text/plain"
	})).Return(elements, nil).Once()

	out, err := newService(llm).Draw(context.Background(), "a red car")
	require.NoError(t, err)
	assert.Equal(t, elements, out)
	llm.AssertExpectations(t)
}

func TestDrawPassesMalformedOutputThrough(t *testing.T) {
	llm := &MockLLM{}
	llm.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return("```json\n[{\"type\":", nil).Once()

	out, err := newService(llm).Draw(context.Background(), "a tree")
	require.NoError(t, err)
	assert.Equal(t, "```json\n[{\"type\":", out)
}

func TestDrawMissingText(t *testing.T) {
	llm := &MockLLM{}

	_, err := newService(llm).Draw(context.Background(), "")
	assert.True(t, errors.Is(err, ErrMissingText))
	llm.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestDrawUpstreamError(t *testing.T) {
	llm := &MockLLM{}
	llm.On("Generate", mock.Anything, mock.Anything, mock.Anything).
		Return("", model.ErrGeneration).Once()

	_, err := newService(llm).Draw(context.Background(), "a sun")
	assert.True(t, errors.Is(err, model.ErrGeneration))
}
