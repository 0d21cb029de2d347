package server

import "context"

// Server defines the lifecycle contract for transport servers managed by this
// package.
type Server interface {
	// Run binds the listener and serves requests until ctx is cancelled, then
	// shuts down gracefully. A bind failure is returned immediately.
	Run(ctx context.Context) error
}
