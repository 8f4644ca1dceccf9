package workers

import (
	"context"
	"time"
)

// Workers runs a group of workers on a shared interval.
type Workers struct {
	workers  []Worker
	interval time.Duration
}

func New(interval time.Duration, workers ...Worker) *Workers {
	return &Workers{workers: workers, interval: interval}
}

// Run starts every worker in order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx, w.interval)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
