package server

import "context"

// Server is the lifecycle of the stub API server.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT, then shuts down.
	RunServer()

	// Run serves until ctx is cancelled, then shuts down.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
