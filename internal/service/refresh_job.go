// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-content-admin/internal/logger"
)

type refreshJob struct {
	synchronizer ListSynchronizer
	logger       *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a refreshJob that calls synchronizer.RefreshAll on a ticker.
// The job is idle until Start is called.
func NewRefreshJob(synchronizer ListSynchronizer, logger *logger.Logger) RefreshJob {
	return &refreshJob{synchronizer: synchronizer, logger: logger}
}

// Start implements RefreshJob. It stops any previously running job, then
// launches a background goroutine that calls RefreshAll every interval. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *refreshJob) Start(ctx context.Context, interval time.Duration) {
	j.Stop()

	if interval <= 0 {
		j.logger.Debug().Str("func", "refreshJob.Start").Msg("periodic refresh is disabled")
		return
	}

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.synchronizer.RefreshAll(jobCtx); err != nil && jobCtx.Err() == nil {
					j.logger.Warn().
						Str("func", "refreshJob.Start").
						Str("resource", j.synchronizer.Resource().String()).
						Err(err).
						Msg("periodic refresh failed")
				}
			}
		}
	}()
}

// Stop implements RefreshJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running.
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
