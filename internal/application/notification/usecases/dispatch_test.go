package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitedesk/sitedesk/internal/domain/notification"
	"github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/shared/config"
)

func testNotificationConfig() config.NotificationConfig {
	return config.NotificationConfig{
		DefaultChannel:   notification.ChannelSMS,
		MaxAttempts:      5,
		DispatchInterval: time.Second,
		BatchSize:        10,
		ClaimLease:       time.Minute,
	}
}

func TestDispatch_DeliversAndMarks(t *testing.T) {
	var requeueMax, claimLimit int
	var lease time.Duration
	queue := &mockQueueRepository{
		RequeueFailedFunc: func(ctx context.Context, maxAttempts int) (int64, error) {
			requeueMax = maxAttempts
			return 2, nil
		},
		ClaimPendingFunc: func(ctx context.Context, limit int, now, leaseCutoff time.Time) ([]*notification.QueueEntry, error) {
			claimLimit = limit
			lease = now.Sub(leaseCutoff)
			return []*notification.QueueEntry{
				newPendingEntry(1, notification.EventComplaintNew, notification.ChannelSMS, notification.SiteRecipient("SITE-A")),
				newPendingEntry(2, notification.EventComplaintClosed, notification.ChannelSMS, notification.UserRecipient(9)),
			}, nil
		},
	}
	users := &mockUserRepository{
		users: map[uint]*user.User{9: newTestUser(9, user.RoleResident, "SITE-A", true)},
		staff: map[string][]*user.User{"SITE-A": {
			newTestUser(20, user.RoleStaff, "SITE-A", true),
			newTestUser(21, user.RoleAdmin, "SITE-A", true),
		}},
	}
	sms := &mockSender{}
	observer := &mockDeliveryObserver{}

	uc := NewDispatchNotificationsUseCase(queue, users, map[string]Sender{notification.ChannelSMS: sms}, nil, observer, testNotificationConfig(), testLogger())

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, requeueMax)
	assert.Equal(t, 10, claimLimit)
	assert.Equal(t, time.Minute, lease)
	assert.Equal(t, int64(2), result.Requeued)
	assert.Equal(t, 2, result.Claimed)
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 0, result.Failed)

	require.Len(t, sms.sent, 2)
	assert.Len(t, sms.sent[0].To, 2)
	assert.Equal(t, "evt-1", sms.sent[0].EventID)
	require.Len(t, sms.sent[1].To, 1)
	assert.Equal(t, uint(9), sms.sent[1].To[0].UserID)
	assert.Equal(t, "u9@example.com", sms.sent[1].To[0].Email)

	assert.ElementsMatch(t, []uint{1, 2}, queue.sent)
	assert.Empty(t, queue.failed)
	assert.Equal(t, []string{"sms:SENT", "sms:SENT"}, observer.outcomes)
}

func TestDispatch_FailuresStayOnTheEntry(t *testing.T) {
	queue := &mockQueueRepository{
		ClaimPendingFunc: func(ctx context.Context, limit int, now, leaseCutoff time.Time) ([]*notification.QueueEntry, error) {
			return []*notification.QueueEntry{
				newPendingEntry(1, notification.EventWorkStatus, notification.ChannelSMS, notification.UserRecipient(9)),
				newPendingEntry(2, notification.EventWorkStatus, notification.ChannelSMS, notification.UserRecipient(404)),
				newPendingEntry(3, notification.EventWorkStatus, notification.ChannelSMS, "bogus"),
			}, nil
		},
	}
	users := &mockUserRepository{
		users: map[uint]*user.User{9: newTestUser(9, user.RoleResident, "SITE-A", true)},
	}
	sms := &mockSender{err: errors.New(strings.Repeat("x", notification.MaxErrorLength+50))}

	uc := NewDispatchNotificationsUseCase(queue, users, map[string]Sender{notification.ChannelSMS: sms}, nil, nil, testNotificationConfig(), testLogger())

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, result.Failed)
	assert.Equal(t, 0, result.Sent)
	assert.Empty(t, queue.sent)
	require.Len(t, queue.failed, 3)
	assert.Len(t, []rune(queue.failed[1]), notification.MaxErrorLength)
	assert.Contains(t, queue.failed[2], "no active contacts")
	assert.Contains(t, queue.failed[3], "unknown recipient")
}

func TestDispatch_UnknownChannelUsesFallback(t *testing.T) {
	queue := &mockQueueRepository{
		ClaimPendingFunc: func(ctx context.Context, limit int, now, leaseCutoff time.Time) ([]*notification.QueueEntry, error) {
			return []*notification.QueueEntry{
				newPendingEntry(1, notification.EventVisitLogged, notification.ChannelChat, notification.UserRecipient(9)),
			}, nil
		},
	}
	users := &mockUserRepository{users: map[uint]*user.User{9: newTestUser(9, user.RoleResident, "SITE-A", true)}}
	fallback := &mockSender{}

	uc := NewDispatchNotificationsUseCase(queue, users, map[string]Sender{}, fallback, nil, testNotificationConfig(), testLogger())

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	require.Len(t, fallback.sent, 1)
	assert.Equal(t, notification.ChannelChat, fallback.sent[0].Channel)
}

func TestDispatch_NoSenderFails(t *testing.T) {
	queue := &mockQueueRepository{
		ClaimPendingFunc: func(ctx context.Context, limit int, now, leaseCutoff time.Time) ([]*notification.QueueEntry, error) {
			return []*notification.QueueEntry{
				newPendingEntry(1, notification.EventVisitLogged, notification.ChannelChat, notification.UserRecipient(9)),
			}, nil
		},
	}
	uc := NewDispatchNotificationsUseCase(queue, &mockUserRepository{}, nil, nil, nil, testNotificationConfig(), testLogger())

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	assert.Contains(t, queue.failed[1], "no sender")
}

func TestDispatch_InactiveUserIsSkipped(t *testing.T) {
	queue := &mockQueueRepository{
		ClaimPendingFunc: func(ctx context.Context, limit int, now, leaseCutoff time.Time) ([]*notification.QueueEntry, error) {
			return []*notification.QueueEntry{
				newPendingEntry(1, notification.EventComplaintClosed, notification.ChannelSMS, notification.UserRecipient(9)),
			}, nil
		},
	}
	users := &mockUserRepository{users: map[uint]*user.User{9: newTestUser(9, user.RoleResident, "SITE-A", false)}}
	sms := &mockSender{}

	uc := NewDispatchNotificationsUseCase(queue, users, map[string]Sender{notification.ChannelSMS: sms}, nil, nil, testNotificationConfig(), testLogger())

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	assert.Empty(t, sms.sent)
}

func TestDispatch_ClaimErrorReturned(t *testing.T) {
	queue := &mockQueueRepository{
		ClaimPendingFunc: func(ctx context.Context, limit int, now, leaseCutoff time.Time) ([]*notification.QueueEntry, error) {
			return nil, errors.New("locked")
		},
	}
	uc := NewDispatchNotificationsUseCase(queue, &mockUserRepository{}, nil, nil, nil, testNotificationConfig(), testLogger())

	_, err := uc.Execute(context.Background())
	assert.Error(t, err)
}
