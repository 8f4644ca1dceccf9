// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any periodic
// background worker.
//
// Start must not block: implementations spawn their own goroutine and keep
// running until ctx is cancelled or Stop is called. Stop blocks until the
// goroutine has exited and is safe to call on an idle worker.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Start(ctx context.Context, interval time.Duration) {
//	    // start a ticker goroutine
//	}
//
//	func (w *MyWorker) Stop() {
//	    // cancel and wait
//	}
type Worker interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
