package workers

import (
	"context"
	"time"

	"github.com/mkhalitov/taskvault/internal/config"
	"github.com/mkhalitov/taskvault/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewClientWorkers assembles the background workers of the client: currently
// a single cache refresh worker driven by the configured interval.
func NewClientWorkers(cfg config.ClientWorkers, refresh service.RefreshJob) *Workers {
	return &Workers{
		workers: []Worker{
			&cacheRefreshWorker{job: refresh, interval: cfg.RefreshInterval},
		},
	}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}

// cacheRefreshWorker runs the periodic cache refresh job while the user is
// signed in.
type cacheRefreshWorker struct {
	job      service.RefreshJob
	interval time.Duration
}

func (w *cacheRefreshWorker) Run(ctx context.Context) {
	w.job.Start(ctx, w.interval)
}

func (w *cacheRefreshWorker) Stop() {
	w.job.Stop()
}
