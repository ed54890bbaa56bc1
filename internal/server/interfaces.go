package server

import "context"

// Server is the lifecycle contract of the stub upload service.
type Server interface {
	// RunServer serves until a termination signal arrives.
	RunServer()

	// Run serves until ctx is done.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
