package notifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sitedesk/sitedesk/internal/application/notification/usecases"
	"github.com/sitedesk/sitedesk/internal/domain/notification"
	"github.com/sitedesk/sitedesk/internal/infrastructure/email"
	"github.com/sitedesk/sitedesk/internal/shared/config"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

func TestSenders(t *testing.T) {
	t.Run("smtp configured", func(t *testing.T) {
		senders, fallback := Senders(config.EmailConfig{SMTPHost: "mail.example.com", SMTPPort: 25}, logger.NewNop())

		assert.IsType(t, &email.SMTPSender{}, senders[notification.ChannelEmail])
		assert.IsType(t, &LogSender{}, senders[notification.ChannelSMS])
		assert.IsType(t, &LogSender{}, fallback)
	})

	t.Run("no smtp host", func(t *testing.T) {
		senders, _ := Senders(config.EmailConfig{}, logger.NewNop())
		assert.IsType(t, &LogSender{}, senders[notification.ChannelEmail])
	})
}

func TestLogSender_Send(t *testing.T) {
	sender := NewLogSender(logger.NewNop())
	msg := usecases.Message{EventID: "evt-1", To: []usecases.Contact{{UserID: 3}}}

	assert.NoError(t, sender.Send(context.Background(), msg))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sender.Send(ctx, msg), context.Canceled)
}
