// Package workers runs the long-lived parts of the application side by side.
//
// It defines the Worker interface and a Workers aggregate that starts every
// worker in its own goroutine and stops all of them as soon as one returns.
package workers

import "context"

// Worker is a long-running component. Run blocks until ctx is cancelled or
// the worker has nothing more to do.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context) error

// Run calls f(ctx).
func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
