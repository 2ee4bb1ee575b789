// Package email delivers notification queue entries over SMTP.
package email

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/sitedesk/sitedesk/internal/application/notification/usecases"
	"github.com/sitedesk/sitedesk/internal/shared/config"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

// HeaderEventID carries the queue entry's event id so receivers can drop
// redelivered mail.
const HeaderEventID = "X-SiteDesk-Event-ID"

type mailer interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPSender struct {
	config config.EmailConfig
	mailer mailer
	logger logger.Interface
}

var _ usecases.Sender = (*SMTPSender)(nil)

func NewSMTPSender(cfg config.EmailConfig, log logger.Interface) *SMTPSender {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	return newSMTPSender(cfg, dialer, log)
}

func newSMTPSender(cfg config.EmailConfig, m mailer, log logger.Interface) *SMTPSender {
	return &SMTPSender{
		config: cfg,
		mailer: m,
		logger: log,
	}
}

// Send mails every contact that has an address. Contacts without one are
// skipped; a message with no addressable contact fails.
func (s *SMTPSender) Send(ctx context.Context, msg usecases.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	subject := msg.Subject
	if subject == "" {
		subject = fmt.Sprintf("[SiteDesk] %s", msg.EventKey)
	}

	var messages []*gomail.Message
	for _, to := range msg.To {
		if strings.TrimSpace(to.Email) == "" {
			continue
		}
		m := gomail.NewMessage()
		m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
		m.SetAddressHeader("To", to.Email, to.Name)
		m.SetHeader("Subject", subject)
		m.SetHeader(HeaderEventID, msg.EventID)
		m.SetBody("text/plain", msg.Body)
		messages = append(messages, m)
	}

	if len(messages) == 0 {
		return fmt.Errorf("no email address among %d recipients", len(msg.To))
	}

	if err := s.mailer.DialAndSend(messages...); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Debugw("email sent", "event_id", msg.EventID, "event_key", msg.EventKey, "count", len(messages))
	return nil
}
