// Package notifier builds the channel senders used by the dispatch worker.
package notifier

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/application/notification/usecases"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

// LogSender writes messages to the log. It serves channels without a
// transport of their own, such as sms and chat in development.
type LogSender struct {
	logger logger.Interface
}

var _ usecases.Sender = (*LogSender)(nil)

func NewLogSender(log logger.Interface) *LogSender {
	return &LogSender{logger: log}
}

func (s *LogSender) Send(ctx context.Context, msg usecases.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	userIDs := make([]uint, 0, len(msg.To))
	for _, c := range msg.To {
		userIDs = append(userIDs, c.UserID)
	}

	s.logger.Infow("notification delivered to log",
		"event_id", msg.EventID,
		"event_key", msg.EventKey,
		"channel", msg.Channel,
		"subject", msg.Subject,
		"recipients", userIDs,
		"body", msg.Body,
	)
	return nil
}
