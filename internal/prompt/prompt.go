// Package prompt holds the fixed instructions sent with every relay request.
package prompt

import (
	_ "embed"

	"github.com/sokinpui/sketchsolve.go/model"
)

//go:embed solve.txt
var solveInstructions string

//go:embed drawing.txt
var drawingInstructions string

// Solve returns the parts for a solve-from-image call: the instructions
// followed by the image itself.
func Solve(image []byte, mediaType string) []model.Part {
	return []model.Part{
		model.TextPart(solveInstructions),
		model.BlobPart(image, mediaType),
	}
}

// Drawing returns the parts for a drawing-from-text call. The user text is
// passed as the "input" turn and the model continues after "output: ".
func Drawing(text string) []model.Part {
	return []model.Part{
		model.TextPart(drawingInstructions),
		model.TextPart("input: " + text),
		model.TextPart("output: "),
	}
}

// DrawingConfig is the sampling setup for drawing generation. Solve calls use
// the provider defaults.
func DrawingConfig() *model.Config {
	temperature, topP, topK := float32(1), float32(0.95), float32(40)
	return &model.Config{
		Temperature:      &temperature,
		TopP:             &topP,
		TopK:             &topK,
		OutputLength:     8192,
		ResponseMIMEType: "text/plain",
	}
}
