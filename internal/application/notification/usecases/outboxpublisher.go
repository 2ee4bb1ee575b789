package usecases

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/sitedesk/sitedesk/internal/domain/notification"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

// OutboxPublisher writes one PENDING queue entry per recipient. It runs in
// the caller's transaction, so entries commit or roll back with the
// transition that produced them.
type OutboxPublisher struct {
	queueRepo      notification.QueueRepository
	templateRepo   notification.TemplateRepository
	defaultChannel string
	newEventID     func() string
	logger         logger.Interface
}

func NewOutboxPublisher(
	queueRepo notification.QueueRepository,
	templateRepo notification.TemplateRepository,
	defaultChannel string,
	logger logger.Interface,
) *OutboxPublisher {
	if defaultChannel == "" {
		defaultChannel = notification.ChannelSMS
	}
	return &OutboxPublisher{
		queueRepo:      queueRepo,
		templateRepo:   templateRepo,
		defaultChannel: defaultChannel,
		newEventID:     uuid.NewString,
		logger:         logger,
	}
}

var _ notification.Publisher = (*OutboxPublisher)(nil)

func (p *OutboxPublisher) Publish(ctx context.Context, event notification.Event) error {
	subject, payload := p.render(ctx, event)

	for _, recipient := range event.Recipients {
		entry, err := notification.NewQueueEntry(
			p.newEventID(),
			event.Key,
			event.ComplaintID,
			p.defaultChannel,
			recipient,
			subject,
			payload,
			event.Data,
		)
		if err != nil {
			return err
		}
		if err := p.queueRepo.Enqueue(ctx, entry); err != nil {
			return err
		}
		p.logger.Debugw("notification enqueued",
			"event_key", event.Key,
			"event_id", entry.EventID(),
			"recipient", recipient)
	}
	return nil
}

// render uses the registered template for the event and channel. Without an
// enabled template, or when rendering fails, the payload is the raw event
// data as JSON so the event is still delivered.
func (p *OutboxPublisher) render(ctx context.Context, event notification.Event) (string, string) {
	if p.templateRepo != nil {
		tmpl, err := p.templateRepo.Get(ctx, event.Key, p.defaultChannel)
		switch {
		case err != nil:
			p.logger.Warnw("failed to load notification template", "event_key", event.Key, "error", err)
		case tmpl != nil && tmpl.Enabled():
			subject, body, err := tmpl.Render(event.Data)
			if err == nil {
				return subject, body
			}
			p.logger.Warnw("failed to render notification template", "event_key", event.Key, "error", err)
		}
	}
	return rawPayload(event)
}

func rawPayload(event notification.Event) (string, string) {
	raw, err := json.Marshal(event.Data)
	if err != nil {
		return event.Key.String(), fmt.Sprintf("%v", event.Data)
	}
	return event.Key.String(), string(raw)
}
