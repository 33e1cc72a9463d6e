// Package rpc defines the gRPC relay service. Messages are plain structs
// carried by a JSON codec, so no generated protobuf code is involved.
package rpc

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "sketchsolve.Relay"

const (
	CalculateMethod = "/sketchsolve.Relay/Calculate"
	GenerateMethod  = "/sketchsolve.Relay/Generate"
)

type CalculateRequest struct {
	Image     []byte `json:"image"`
	MediaType string `json:"media_type"`
}

type GenerateRequest struct {
	Text string `json:"text"`
}

type TextResponse struct {
	Text string `json:"text"`
}

// RelayServer is the server API for the Relay service.
type RelayServer interface {
	Calculate(context.Context, *CalculateRequest) (*TextResponse, error)
	Generate(context.Context, *GenerateRequest) (*TextResponse, error)
}

func RegisterRelayServer(s grpc.ServiceRegistrar, srv RelayServer) {
	s.RegisterService(&relayServiceDesc, srv)
}

// RelayClient is the client API for the Relay service.
type RelayClient interface {
	Calculate(ctx context.Context, in *CalculateRequest, opts ...grpc.CallOption) (*TextResponse, error)
	Generate(ctx context.Context, in *GenerateRequest, opts ...grpc.CallOption) (*TextResponse, error)
}

type relayClient struct {
	cc grpc.ClientConnInterface
}

func NewRelayClient(cc grpc.ClientConnInterface) RelayClient {
	return &relayClient{cc: cc}
}

func (c *relayClient) Calculate(ctx context.Context, in *CalculateRequest, opts ...grpc.CallOption) (*TextResponse, error) {
	out := new(TextResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(ContentSubtype)}, opts...)
	if err := c.cc.Invoke(ctx, CalculateMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *relayClient) Generate(ctx context.Context, in *GenerateRequest, opts ...grpc.CallOption) (*TextResponse, error) {
	out := new(TextResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(ContentSubtype)}, opts...)
	if err := c.cc.Invoke(ctx, GenerateMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func calculateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CalculateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RelayServer).Calculate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CalculateMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RelayServer).Calculate(ctx, req.(*CalculateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func generateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GenerateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RelayServer).Generate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GenerateMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RelayServer).Generate(ctx, req.(*GenerateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var relayServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RelayServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Calculate", Handler: calculateHandler},
		{MethodName: "Generate", Handler: generateHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sketchsolve/relay",
}
