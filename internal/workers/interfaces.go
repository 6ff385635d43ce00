// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that runs multiple
// workers in a unified way, and the maintenance workers themselves.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker's execution loop and blocks until ctx is cancelled.
// Implementations are expected to be started in their own goroutine.
type Worker interface {
	Run(ctx context.Context)
}
