package rpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// ContentSubtype selects the JSON codec on the wire
// (content-type application/grpc+json).
const ContentSubtype = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return ContentSubtype
}
