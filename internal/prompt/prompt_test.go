package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve(t *testing.T) {
	parts := Solve([]byte("png-bytes"), "image/png")

	require.Len(t, parts, 2)
	assert.False(t, parts[0].IsBlob())
	for _, category := range []string{"Mathematical Equations", "Physics Problems", "Graphical/Geometrical Problems", "Other Visual Content"} {
		assert.Contains(t, parts[0].Text, category)
	}
	assert.Contains(t, parts[0].Text, "PEMDAS")
	assert.Contains(t, parts[0].Text, "only the answer without any additional explanation")

	assert.True(t, parts[1].IsBlob())
	assert.Equal(t, []byte("png-bytes"), parts[1].Data)
	assert.Equal(t, "image/png", parts[1].MIMEType)
}

func TestDrawing(t *testing.T) {
	parts := Drawing("a red car")

	require.Len(t, parts, 3)
	assert.Equal(t, "input: a red car", parts[1].Text)
	assert.Equal(t, "output: ", parts[2].Text)

	instructions := parts[0].Text
	for _, attr := range []string{"type", "id", "fillStyle", "strokeWidth", "strokeColor", "backgroundColor", "width", "height", "angle", "fontFamily", "fontSize"} {
		assert.Contains(t, instructions, attr)
	}
	assert.Contains(t, instructions, `Do not use the type "line" directly`)
	assert.Contains(t, instructions, `does not include type:"star"`)
	assert.Contains(t, instructions, `"id": "car-body"`)
	assert.NotContains(t, instructions, `\n`, "escapes must be decoded")
}

func TestDrawingConfig(t *testing.T) {
	cfg := DrawingConfig()

	assert.Equal(t, float32(1), *cfg.Temperature)
	assert.Equal(t, float32(0.95), *cfg.TopP)
	assert.Equal(t, float32(40), *cfg.TopK)
	assert.Equal(t, int32(8192), cfg.OutputLength)
	assert.Equal(t, "text/plain", cfg.ResponseMIMEType)

	assert.NotSame(t, cfg.Temperature, DrawingConfig().Temperature)
}
