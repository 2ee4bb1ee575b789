package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitedesk/sitedesk/internal/domain/notification"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

func enqueueN(t *testing.T, repo notification.QueueRepository, n int) []*notification.QueueEntry {
	t.Helper()
	entries := make([]*notification.QueueEntry, 0, n)
	for i := 0; i < n; i++ {
		e, err := notification.NewQueueEntry(
			fmt.Sprintf("evt-%d", i),
			notification.EventComplaintNew,
			nil,
			notification.ChannelSMS,
			notification.SiteRecipient("SITE-A"),
			"",
			"new complaint",
			map[string]interface{}{"ticketNo": "C-20250101-00001"},
		)
		require.NoError(t, err)
		require.NoError(t, repo.Enqueue(context.Background(), e))
		entries = append(entries, e)
	}
	return entries
}

func TestNotificationQueueRepository_EnqueueDuplicateEventID(t *testing.T) {
	repos := newTestRepos(t)
	repo := NewNotificationQueueRepository(repos.db, logger.NewNop())

	entries := enqueueN(t, repo, 1)
	stored, err := repo.GetByID(context.Background(), entries[0].ID())
	require.NoError(t, err)
	assert.Equal(t, notification.StatusPending, stored.Status())
	assert.Equal(t, "C-20250101-00001", stored.Data()["ticketNo"])

	dup, err := notification.NewQueueEntry("evt-0", notification.EventComplaintNew, nil,
		notification.ChannelSMS, "user:1", "", "x", nil)
	require.NoError(t, err)
	err = repo.Enqueue(context.Background(), dup)
	assert.True(t, errors.IsConflictError(err))
}

func TestNotificationQueueRepository_ClaimLease(t *testing.T) {
	repos := newTestRepos(t)
	repo := NewNotificationQueueRepository(repos.db, logger.NewNop())
	ctx := context.Background()
	enqueueN(t, repo, 3)

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	lease := 5 * time.Minute

	first, err := repo.ClaimPending(ctx, 2, now, now.Add(-lease))
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.NotNil(t, first[0].ClaimedAt())

	second, err := repo.ClaimPending(ctx, 10, now.Add(time.Second), now.Add(time.Second-lease))
	require.NoError(t, err)
	require.Len(t, second, 1, "leased entries are not handed out twice")

	later := now.Add(lease + time.Minute)
	expired, err := repo.ClaimPending(ctx, 10, later, later.Add(-lease))
	require.NoError(t, err)
	assert.Len(t, expired, 3, "expired leases can be claimed again")

	none, err := repo.ClaimPending(ctx, 0, later, later)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestNotificationQueueRepository_MarkAndRequeue(t *testing.T) {
	repos := newTestRepos(t)
	repo := NewNotificationQueueRepository(repos.db, logger.NewNop())
	ctx := context.Background()
	entries := enqueueN(t, repo, 2)
	now := time.Now().UTC()

	ok, err := repo.MarkSent(ctx, entries[0].ID(), now)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.MarkSent(ctx, entries[0].ID(), now)
	require.NoError(t, err)
	assert.False(t, ok, "already sent")

	ok, err = repo.MarkFailed(ctx, entries[1].ID(), "smtp down")
	require.NoError(t, err)
	assert.True(t, ok)

	failed, err := repo.GetByID(ctx, entries[1].ID())
	require.NoError(t, err)
	assert.Equal(t, notification.StatusFailed, failed.Status())
	assert.Equal(t, 1, failed.Attempts())
	assert.Equal(t, "smtp down", failed.LastError())
	assert.Nil(t, failed.ClaimedAt())

	moved, err := repo.RequeueFailed(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, moved, "attempts reached the limit")

	moved, err = repo.RequeueFailed(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), moved)

	pending := notification.StatusPending
	list, total, err := repo.List(ctx, notification.QueueFilter{Status: &pending})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, entries[1].ID(), list[0].ID())
}

func TestNotificationTemplateRepository_Upsert(t *testing.T) {
	repos := newTestRepos(t)
	repo := NewNotificationTemplateRepository(repos.db)
	ctx := context.Background()

	tpl, err := notification.NewTemplate(notification.EventComplaintNew, notification.ChannelSMS, "", "[{{.ticketNo}}] received")
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(ctx, tpl))

	replacement, err := notification.NewTemplate(notification.EventComplaintNew, notification.ChannelSMS, "", "[{{.ticketNo}}] new")
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(ctx, replacement))

	got, err := repo.Get(ctx, notification.EventComplaintNew, notification.ChannelSMS)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "[{{.ticketNo}}] new", got.Body())

	missing, err := repo.Get(ctx, notification.EventComplaintNew, notification.ChannelEmail)
	require.NoError(t, err)
	assert.Nil(t, missing)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
