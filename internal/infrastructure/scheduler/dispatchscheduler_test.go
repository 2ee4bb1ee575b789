package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitedesk/sitedesk/internal/application/notification/dto"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

type countingDispatch struct {
	calls atomic.Int32
	err   error
}

func (d *countingDispatch) Execute(ctx context.Context) (*dto.DispatchResult, error) {
	d.calls.Add(1)
	if d.err != nil {
		return nil, d.err
	}
	return &dto.DispatchResult{Claimed: 1, Sent: 1}, nil
}

func TestDispatchScheduler_RunsUntilStopped(t *testing.T) {
	dispatch := &countingDispatch{}
	s := NewDispatchScheduler(dispatch, 5*time.Millisecond, logger.NewNop())

	s.Start(context.Background())
	s.Start(context.Background())

	require.Eventually(t, func() bool { return dispatch.calls.Load() >= 2 }, time.Second, time.Millisecond)
	s.Stop()

	stoppedAt := dispatch.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stoppedAt, dispatch.calls.Load())
}

func TestDispatchScheduler_RunOnceSurvivesErrors(t *testing.T) {
	dispatch := &countingDispatch{err: errors.New("db down")}
	s := NewDispatchScheduler(dispatch, time.Minute, logger.NewNop())

	s.RunOnce(context.Background())
	s.RunOnce(context.Background())

	assert.Equal(t, int32(2), dispatch.calls.Load())
}

func TestDispatchScheduler_StopWithoutStart(t *testing.T) {
	s := NewDispatchScheduler(&countingDispatch{}, 0, logger.NewNop())
	assert.Equal(t, 10*time.Second, s.interval)
	s.Stop()
}
