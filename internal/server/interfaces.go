package server

import "context"

// Server defines the lifecycle contract of the relay process.
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT arrives,
	// then shuts down gracefully.
	RunServer() error

	// Serve is RunServer driven by ctx instead of process signals.
	Serve(ctx context.Context) error
}
