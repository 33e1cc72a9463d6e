package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	huma "github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/sokinpui/sketchsolve.go/internal/config"
	"github.com/sokinpui/sketchsolve.go/internal/models"
	"github.com/sokinpui/sketchsolve.go/internal/relay"
	"github.com/sokinpui/sketchsolve.go/internal/server"
	"github.com/sokinpui/sketchsolve.go/internal/upload"
	"github.com/sokinpui/sketchsolve.go/internal/web"
	"github.com/sokinpui/sketchsolve.go/model"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

func newLogger(debug bool) (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

func main() {
	cli := humacli.New(func(hooks humacli.Hooks, options *models.Options) {
		logger, err := newLogger(options.Debug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
			os.Exit(1)
		}

		cfg, err := config.Load()
		if err != nil {
			logger.Fatalw("Invalid configuration", "error", err)
		}

		registry, err := model.New(context.Background(), cfg)
		if err != nil {
			logger.Fatalw("Failed to initialize LLM registry", "error", err)
		}
		llm, err := registry.Get(cfg.Provider)
		if err != nil {
			logger.Fatalw("Selected provider is not usable", "provider", cfg.Provider, "error", err)
		}

		store, err := upload.NewStore(cfg.UploadDir, logger)
		if err != nil {
			logger.Fatalw("Failed to prepare upload directory", "error", err)
		}
		sweeper, err := upload.NewSweeper(store, cfg.SweepSchedule, cfg.SweepTTL, logger)
		if err != nil {
			logger.Fatalw("Invalid sweep schedule", "schedule", cfg.SweepSchedule, "error", err)
		}

		svc := relay.New(llm, logger)

		mux := http.NewServeMux()
		server.NewHTTPServer(svc, store, cfg.MaxUploadBytes, logger).RegisterRoutes(mux)
		web.RegisterRoutes(mux)

		api := humago.New(mux, huma.DefaultConfig("SketchSolve API", "1.0.0"))
		server.RegisterAPIRoutes(api, registry, cfg.Provider)

		httpServer := &http.Server{
			Addr:              fmt.Sprintf("%s:%d", options.Host, options.Port),
			Handler:           server.NewHandler(mux, logger, options.Debug),
			ReadHeaderTimeout: 10 * time.Second,
		}

		var grpcServer *grpc.Server
		if options.GRPCPort > 0 {
			grpcServer = grpc.NewServer()
			server.New(svc, logger).Register(grpcServer)
		}

		hooks.OnStart(func() {
			sweeper.Start()

			if grpcServer != nil {
				lis, err := net.Listen("tcp", fmt.Sprintf("%s:%d", options.Host, options.GRPCPort))
				if err != nil {
					logger.Fatalw("Failed to listen for gRPC", "port", options.GRPCPort, "error", err)
				}
				go func() {
					logger.Infow("gRPC relay listening", "addr", lis.Addr().String())
					if err := grpcServer.Serve(lis); err != nil {
						logger.Errorw("gRPC server stopped", "error", err)
					}
				}()
			}

			logger.Infow("Server listening", "addr", httpServer.Addr, "provider", cfg.Provider, "model", llm.ModelCode())
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Errorw("Listen error", "error", err)
			}
		})

		hooks.OnStop(func() {
			logger.Infow("Shutting down")

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := httpServer.Shutdown(ctx); err != nil {
				logger.Errorw("Shutdown error", "error", err)
			}
			if grpcServer != nil {
				grpcServer.GracefulStop()
			}
			<-sweeper.Stop().Done()
			_ = logger.Sync()
		})
	})

	cli.Run()
}
