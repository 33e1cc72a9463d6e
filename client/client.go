package client

import (
	"context"

	"github.com/sokinpui/sketchsolve.go/rpc"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client is an interface for interacting with the sketchsolve relay.
type Client interface {
	// Calculate sends an image of a problem and returns the model's final answer.
	Calculate(ctx context.Context, image []byte, mediaType string) (string, error)

	// Generate sends a drawing description and returns the model's drawing
	// elements as an unvalidated JSON string.
	Generate(ctx context.Context, text string) (string, error)

	// Close closes the connection to the server.
	Close() error
}

// grpcClient is the gRPC implementation of the Client interface.
type grpcClient struct {
	conn   *grpc.ClientConn
	client rpc.RelayClient
}

// New creates a new client for the relay at addr. Extra dial options are
// applied after the default insecure transport credentials.
func New(addr string, opts ...grpc.DialOption) (Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, err
	}

	return &grpcClient{
		conn:   conn,
		client: rpc.NewRelayClient(conn),
	}, nil
}

// Close closes the gRPC connection.
func (c *grpcClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Calculate implements the Client interface.
func (c *grpcClient) Calculate(ctx context.Context, image []byte, mediaType string) (string, error) {
	resp, err := c.client.Calculate(ctx, &rpc.CalculateRequest{Image: image, MediaType: mediaType})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// Generate implements the Client interface.
func (c *grpcClient) Generate(ctx context.Context, text string) (string, error) {
	resp, err := c.client.Generate(ctx, &rpc.GenerateRequest{Text: text})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
