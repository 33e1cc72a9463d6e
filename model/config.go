package model

import "errors"

// Config defines the generation configuration for a model.
// All fields are optional.
type Config struct {
	Temperature      *float32 `json:"temperature,omitempty"`
	TopP             *float32 `json:"top_p,omitempty"`
	TopK             *float32 `json:"top_k,omitempty"`
	OutputLength     int32    `json:"output_length,omitempty"`
	ResponseMIMEType string   `json:"response_mime_type,omitempty"`
}

// Part is one piece of a single-turn user message: either text or inline
// binary data tagged with its media type.
type Part struct {
	Text     string
	Data     []byte
	MIMEType string
}

// TextPart returns a text-only part.
func TextPart(text string) Part {
	return Part{Text: text}
}

// BlobPart returns an inline data part.
func BlobPart(data []byte, mimeType string) Part {
	return Part{Data: data, MIMEType: mimeType}
}

// IsBlob reports whether the part carries inline data.
func (p Part) IsBlob() bool {
	return len(p.Data) > 0
}

var (
	ErrProviderNotFound   = errors.New("provider not found in registry")
	ErrGeneration         = errors.New("error during text generation")
	ErrConfiguration      = errors.New("failed to initialize client, please check configuration")
	ErrUnexpectedResponse = errors.New("provider response carried no text")
)
