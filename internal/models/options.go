package models

// Options for the CLI. Pass `--port` or set the `SERVICE_PORT` env var.
type Options struct {
	Debug    bool   `doc:"Enable debug logging" short:"d" default:"false"`
	Host     string `doc:"Hostname to listen on." default:"localhost"`
	Port     int    `doc:"Port to listen on." short:"p" default:"4000"`
	GRPCPort int    `doc:"Port for the gRPC relay, 0 disables it." default:"50051"`
}
