package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitedesk/sitedesk/internal/application/notification/dto"
	"github.com/sitedesk/sitedesk/internal/domain/notification"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
)

func TestClaimNotifications_LimitBounds(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"default batch", 0, 10},
		{"explicit", 25, 25},
		{"capped", 10000, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got int
			queue := &mockQueueRepository{
				ClaimPendingFunc: func(ctx context.Context, limit int, now, leaseCutoff time.Time) ([]*notification.QueueEntry, error) {
					got = limit
					return nil, nil
				},
			}
			uc := NewClaimNotificationsUseCase(queue, testNotificationConfig(), testLogger())

			entries, err := uc.Execute(context.Background(), tt.limit)
			require.NoError(t, err)
			assert.NotNil(t, entries)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReportDelivery(t *testing.T) {
	t.Run("sent", func(t *testing.T) {
		queue := &mockQueueRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*notification.QueueEntry, error) {
				return newPendingEntry(id, notification.EventComplaintNew, notification.ChannelSMS, "site:SITE-A"), nil
			},
		}
		uc := NewReportDeliveryUseCase(queue, testLogger())

		out, err := uc.Execute(context.Background(), 4, dto.DeliveryReport{Status: "SENT"})
		require.NoError(t, err)
		assert.Equal(t, uint(4), out.ID)
		assert.Equal(t, []uint{4}, queue.sent)
	})

	t.Run("failed without message", func(t *testing.T) {
		queue := &mockQueueRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*notification.QueueEntry, error) {
				return newPendingEntry(id, notification.EventComplaintNew, notification.ChannelSMS, "site:SITE-A"), nil
			},
		}
		uc := NewReportDeliveryUseCase(queue, testLogger())

		_, err := uc.Execute(context.Background(), 4, dto.DeliveryReport{Status: "FAILED"})
		require.NoError(t, err)
		assert.Equal(t, "delivery failed", queue.failed[4])
	})

	t.Run("not pending", func(t *testing.T) {
		queue := &mockQueueRepository{
			MarkSentFunc: func(ctx context.Context, id uint, sentAt time.Time) (bool, error) { return false, nil },
			GetByIDFunc: func(ctx context.Context, id uint) (*notification.QueueEntry, error) {
				return newPendingEntry(id, notification.EventComplaintNew, notification.ChannelSMS, "site:SITE-A"), nil
			},
		}
		uc := NewReportDeliveryUseCase(queue, testLogger())

		_, err := uc.Execute(context.Background(), 4, dto.DeliveryReport{Status: "SENT"})
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("unknown entry", func(t *testing.T) {
		queue := &mockQueueRepository{
			MarkSentFunc: func(ctx context.Context, id uint, sentAt time.Time) (bool, error) { return false, nil },
		}
		uc := NewReportDeliveryUseCase(queue, testLogger())

		_, err := uc.Execute(context.Background(), 4, dto.DeliveryReport{Status: "SENT"})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("bad status", func(t *testing.T) {
		uc := NewReportDeliveryUseCase(&mockQueueRepository{}, testLogger())

		_, err := uc.Execute(context.Background(), 4, dto.DeliveryReport{Status: "LOST"})
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestListQueue_Filters(t *testing.T) {
	var captured notification.QueueFilter
	queue := &mockQueueRepository{
		ListFunc: func(ctx context.Context, filter notification.QueueFilter) ([]*notification.QueueEntry, int64, error) {
			captured = filter
			return []*notification.QueueEntry{
				newPendingEntry(1, notification.EventWorkStatus, notification.ChannelSMS, "user:1"),
			}, 1, nil
		},
	}
	uc := NewListQueueUseCase(queue, testLogger())
	complaintID := uint(7)

	result, err := uc.Execute(context.Background(), ListQueueQuery{
		Status:      "PENDING",
		EventKey:    "WORK_STATUS",
		ComplaintID: &complaintID,
		Page:        2,
		PageSize:    5,
	})
	require.NoError(t, err)

	require.NotNil(t, captured.Status)
	assert.Equal(t, notification.StatusPending, *captured.Status)
	require.NotNil(t, captured.EventKey)
	assert.Equal(t, notification.EventWorkStatus, *captured.EventKey)
	assert.Equal(t, &complaintID, captured.ComplaintID)
	assert.Equal(t, 2, captured.Page)
	assert.Equal(t, 5, captured.PageSize)
	assert.Equal(t, int64(1), result.Total)
	assert.Len(t, result.Entries, 1)
}

func TestListQueue_RejectsUnknownEnums(t *testing.T) {
	uc := NewListQueueUseCase(&mockQueueRepository{}, testLogger())

	_, err := uc.Execute(context.Background(), ListQueueQuery{Status: "LOST"})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), ListQueueQuery{EventKey: "PARTY"})
	assert.True(t, errors.IsValidationError(err))
}

func TestUpsertTemplate(t *testing.T) {
	var saved *notification.Template
	repo := &mockTemplateRepository{
		UpsertFunc: func(ctx context.Context, tmpl *notification.Template) error {
			saved = tmpl
			tmpl.SetID(3)
			return nil
		},
	}
	uc := NewUpsertTemplateUseCase(repo, testLogger())
	disabled := false

	out, err := uc.Execute(context.Background(), dto.UpsertTemplateRequest{
		EventKey: "COMPLAINT_NEW",
		Channel:  "email",
		Title:    "New {{.ticketNo}}",
		Body:     "{{.title}}",
		Enabled:  &disabled,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(3), out.ID)
	assert.False(t, out.Enabled)
	require.NotNil(t, saved)
	assert.Equal(t, notification.EventComplaintNew, saved.EventKey())

	_, err = uc.Execute(context.Background(), dto.UpsertTemplateRequest{EventKey: "NOPE", Channel: "sms", Body: "x"})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), dto.UpsertTemplateRequest{EventKey: "COMPLAINT_NEW", Channel: "sms", Body: "{{.broken"})
	assert.True(t, errors.IsValidationError(err))
}
