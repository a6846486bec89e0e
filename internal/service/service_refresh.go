package service

import (
	"context"
	"sync"
	"time"

	"github.com/mkhalitov/taskvault/internal/logger"
)

type refreshJob struct {
	tasks  TaskService
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a refreshJob that calls tasks.Refresh on a ticker.
// The job is idle until Start is called.
func NewRefreshJob(tasks TaskService, log *logger.Logger) RefreshJob {
	return &refreshJob{tasks: tasks, logger: log}
}

// Start implements RefreshJob. It stops any previously running job, then
// launches a background goroutine that refreshes the cache every interval.
// If interval is zero or negative it defaults to 5 minutes. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *refreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

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
				if err := j.tasks.Refresh(jobCtx); err != nil {
					j.logger.Warn().
						Err(err).
						Str("func", "refreshJob").
						Msg("background refresh failed")
				}
			}
		}
	}()
}

// Stop implements RefreshJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
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
