package server

import (
	"context"

	"github.com/sokinpui/sketchsolve.go/internal/relay"
	"github.com/sokinpui/sketchsolve.go/rpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Server exposes the relay operations over gRPC with the same error contract
// as the HTTP surface: input problems are InvalidArgument, everything else is
// a generic Internal error whose cause stays in the server log.
type Server struct {
	relay  *relay.Service
	logger *zap.SugaredLogger
}

func New(r *relay.Service, logger *zap.SugaredLogger) *Server {
	return &Server{relay: r, logger: logger}
}

func (s *Server) Register(gs *grpc.Server) {
	rpc.RegisterRelayServer(gs, s)
}

func (s *Server) Calculate(ctx context.Context, req *rpc.CalculateRequest) (*rpc.TextResponse, error) {
	text, err := s.relay.Solve(ctx, &relay.Image{Data: req.Image, MediaType: req.MediaType})
	if err != nil {
		return nil, s.toStatus(rpc.CalculateMethod, err)
	}
	return &rpc.TextResponse{Text: text}, nil
}

func (s *Server) Generate(ctx context.Context, req *rpc.GenerateRequest) (*rpc.TextResponse, error) {
	text, err := s.relay.Draw(ctx, req.Text)
	if err != nil {
		return nil, s.toStatus(rpc.GenerateMethod, err)
	}
	return &rpc.TextResponse{Text: text}, nil
}

func (s *Server) toStatus(method string, err error) error {
	if relay.IsClientError(err) {
		_, msg := statusFor(err)
		return status.Error(codes.InvalidArgument, msg)
	}
	s.logger.Errorw("RPC failed", "method", method, "error", err)
	return status.Error(codes.Internal, msgInternalError)
}
