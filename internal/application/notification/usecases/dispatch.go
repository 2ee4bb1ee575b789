package usecases

import (
	"context"
	"fmt"

	"github.com/sitedesk/sitedesk/internal/application/notification/dto"
	"github.com/sitedesk/sitedesk/internal/domain/notification"
	"github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/shared/biztime"
	"github.com/sitedesk/sitedesk/internal/shared/config"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
	"github.com/sitedesk/sitedesk/internal/shared/utils/logutil"
)

// DeliveryObserver is told about every delivery outcome.
type DeliveryObserver interface {
	ObserveDelivery(channel string, status notification.Status)
}

// DispatchNotificationsUseCase drains one batch of the queue. Failures are
// recorded on the entry and never surface to the workflow that produced it.
type DispatchNotificationsUseCase struct {
	queueRepo notification.QueueRepository
	userRepo  user.Repository
	senders   map[string]Sender
	fallback  Sender
	observer  DeliveryObserver
	cfg       config.NotificationConfig
	logger    logger.Interface
}

func NewDispatchNotificationsUseCase(
	queueRepo notification.QueueRepository,
	userRepo user.Repository,
	senders map[string]Sender,
	fallback Sender,
	observer DeliveryObserver,
	cfg config.NotificationConfig,
	logger logger.Interface,
) *DispatchNotificationsUseCase {
	return &DispatchNotificationsUseCase{
		queueRepo: queueRepo,
		userRepo:  userRepo,
		senders:   senders,
		fallback:  fallback,
		observer:  observer,
		cfg:       cfg,
		logger:    logger,
	}
}

func (uc *DispatchNotificationsUseCase) Execute(ctx context.Context) (*dto.DispatchResult, error) {
	result := &dto.DispatchResult{}

	requeued, err := uc.queueRepo.RequeueFailed(ctx, uc.cfg.MaxAttempts)
	if err != nil {
		uc.logger.Errorw("failed to requeue failed notifications", "error", err)
		return nil, err
	}
	result.Requeued = requeued

	now := biztime.NowUTC()
	entries, err := uc.queueRepo.ClaimPending(ctx, uc.cfg.BatchSize, now, now.Add(-uc.cfg.ClaimLease))
	if err != nil {
		uc.logger.Errorw("failed to claim pending notifications", "error", err)
		return nil, err
	}
	result.Claimed = len(entries)

	for _, entry := range entries {
		if ctx.Err() != nil {
			// Unfinished entries become claimable again once the lease expires.
			break
		}
		if err := uc.deliver(ctx, entry); err != nil {
			result.Failed++
			uc.logger.Warnw("notification delivery failed",
				"id", entry.ID(),
				"event_key", entry.EventKey(),
				"recipient", logutil.MaskContact(entry.Recipient()),
				"error", err)
			if _, markErr := uc.queueRepo.MarkFailed(ctx, entry.ID(), notification.TruncateError(err.Error())); markErr != nil {
				uc.logger.Errorw("failed to mark notification failed", "id", entry.ID(), "error", markErr)
			}
			uc.observe(entry.Channel(), notification.StatusFailed)
			continue
		}

		result.Sent++
		if _, err := uc.queueRepo.MarkSent(ctx, entry.ID(), biztime.NowUTC()); err != nil {
			uc.logger.Errorw("failed to mark notification sent", "id", entry.ID(), "error", err)
		}
		uc.observe(entry.Channel(), notification.StatusSent)
	}

	if result.Claimed > 0 || result.Requeued > 0 {
		uc.logger.Infow("notification batch dispatched",
			"claimed", result.Claimed,
			"sent", result.Sent,
			"failed", result.Failed,
			"requeued", result.Requeued)
	}
	return result, nil
}

func (uc *DispatchNotificationsUseCase) deliver(ctx context.Context, entry *notification.QueueEntry) error {
	sender, ok := uc.senders[entry.Channel()]
	if !ok {
		sender = uc.fallback
	}
	if sender == nil {
		return fmt.Errorf("no sender for channel %s", entry.Channel())
	}

	contacts, err := uc.resolve(ctx, entry.Recipient())
	if err != nil {
		return err
	}
	if len(contacts) == 0 {
		return fmt.Errorf("recipient %s has no active contacts", entry.Recipient())
	}

	return sender.Send(ctx, Message{
		EventID:  entry.EventID(),
		EventKey: entry.EventKey(),
		Channel:  entry.Channel(),
		Subject:  entry.Subject(),
		Body:     entry.Payload(),
		To:       contacts,
	})
}

func (uc *DispatchNotificationsUseCase) resolve(ctx context.Context, recipient string) ([]Contact, error) {
	userID, siteCode, err := notification.ParseRecipient(recipient)
	if err != nil {
		return nil, err
	}

	if userID != 0 {
		u, err := uc.userRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve recipient: %w", err)
		}
		if u == nil || !u.IsActive() {
			return nil, nil
		}
		return []Contact{toContact(u)}, nil
	}

	staff, err := uc.userRepo.ListStaffBySite(ctx, siteCode)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve site staff: %w", err)
	}
	contacts := make([]Contact, 0, len(staff))
	for _, u := range staff {
		contacts = append(contacts, toContact(u))
	}
	return contacts, nil
}

func (uc *DispatchNotificationsUseCase) observe(channel string, status notification.Status) {
	if uc.observer != nil {
		uc.observer.ObserveDelivery(channel, status)
	}
}

func toContact(u *user.User) Contact {
	return Contact{
		UserID: u.ID(),
		Name:   u.DisplayName(),
		Email:  u.Email(),
		Phone:  u.Phone(),
	}
}
