package server

import "context"

// Server defines the lifecycle contract for transport servers managed by this
// package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until ctx is done, a stop
	// signal arrives or the listener fails.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
