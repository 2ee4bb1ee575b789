package notifier

import (
	"github.com/sitedesk/sitedesk/internal/application/notification/usecases"
	"github.com/sitedesk/sitedesk/internal/domain/notification"
	"github.com/sitedesk/sitedesk/internal/infrastructure/email"
	"github.com/sitedesk/sitedesk/internal/shared/config"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

// Senders returns the per-channel senders and the fallback for channels
// without one. Email goes over SMTP when a host is configured.
func Senders(cfg config.EmailConfig, log logger.Interface) (map[string]usecases.Sender, usecases.Sender) {
	fallback := NewLogSender(log.Named("log-sender"))

	senders := map[string]usecases.Sender{
		notification.ChannelSMS:  fallback,
		notification.ChannelChat: fallback,
	}
	if cfg.SMTPHost != "" {
		senders[notification.ChannelEmail] = email.NewSMTPSender(cfg, log.Named("smtp-sender"))
	} else {
		log.Warnw("smtp host not configured, email notifications go to the log")
		senders[notification.ChannelEmail] = fallback
	}

	return senders, fallback
}
