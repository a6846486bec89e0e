package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkhalitov/taskvault/internal/logger"
)

// spyTaskService counts Refresh calls. The embedded interface covers the
// methods the job never touches.
type spyTaskService struct {
	TaskService
	calls atomic.Int64
	err   error
}

func (s *spyTaskService) Refresh(_ context.Context) error {
	s.calls.Add(1)
	return s.err
}

func TestNewRefreshJob_ReturnsInterface(t *testing.T) {
	spy := &spyTaskService{}
	job := NewRefreshJob(spy, logger.Nop())
	require.NotNil(t, job)

	var _ RefreshJob = job
}

func TestRefreshJob_Start_CallsRefresh(t *testing.T) {
	spy := &spyTaskService{}
	job := NewRefreshJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Refresh should have ticked several times, got: %d", got)
}

func TestRefreshJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyTaskService{}
	job := NewRefreshJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	callsLater := spy.calls.Load()

	assert.Equal(t, callsAfterStop, callsLater, "no new calls after Stop")
}

func TestRefreshJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewRefreshJob(&spyTaskService{}, logger.Nop())

	assert.NotPanics(t, func() { job.Stop() })
}

func TestRefreshJob_Restart_ReplacesPreviousRun(t *testing.T) {
	spy := &spyTaskService{}
	job := NewRefreshJob(spy, logger.Nop())
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	// Only one goroutine should survive a restart; after Stop the count
	// must be stable.
	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, spy.calls.Load())
}

func TestRefreshJob_ContextCancelStops(t *testing.T) {
	spy := &spyTaskService{}
	job := NewRefreshJob(spy, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)
	cancel()
	time.Sleep(15 * time.Millisecond)

	callsAfterCancel := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterCancel, spy.calls.Load())

	job.Stop()
}
