// Package scheduler runs the periodic notification dispatch.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/sitedesk/sitedesk/internal/application/notification/usecases"
	"github.com/sitedesk/sitedesk/internal/shared/biztime"
	"github.com/sitedesk/sitedesk/internal/shared/goroutine"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

// DispatchScheduler drains the notification queue on a fixed interval. Only
// one pass runs at a time; a slow pass delays the next tick.
type DispatchScheduler struct {
	dispatch usecases.DispatchExecutor
	interval time.Duration
	timeout  time.Duration
	logger   logger.Interface

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	done    <-chan struct{}
}

func NewDispatchScheduler(dispatch usecases.DispatchExecutor, interval time.Duration, log logger.Interface) *DispatchScheduler {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &DispatchScheduler{
		dispatch: dispatch,
		interval: interval,
		timeout:  5 * time.Minute,
		logger:   log,
	}
}

// Start launches the loop. Calling Start twice is a no-op.
func (s *DispatchScheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = goroutine.Every(ctx, s.logger, "notification-dispatch", s.interval, s.RunOnce)
	s.started = true

	s.logger.Infow("notification dispatch scheduler started", "interval", s.interval)
}

// Stop cancels the loop and waits for the running pass to finish.
func (s *DispatchScheduler) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	cancel, done := s.cancel, s.done
	s.started = false
	s.mu.Unlock()

	cancel()
	<-done
	s.logger.Infow("notification dispatch scheduler stopped")
}

// RunOnce performs a single dispatch pass.
func (s *DispatchScheduler) RunOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	startTime := biztime.NowUTC()

	result, err := s.dispatch.Execute(ctx)
	if err != nil {
		s.logger.Errorw("notification dispatch failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if result.Claimed > 0 || result.Requeued > 0 {
		s.logger.Infow("notification dispatch completed",
			"requeued", result.Requeued,
			"claimed", result.Claimed,
			"sent", result.Sent,
			"failed", result.Failed,
			"duration", time.Since(startTime),
		)
	}
}
