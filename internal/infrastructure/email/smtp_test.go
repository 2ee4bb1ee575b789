package email

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/sitedesk/sitedesk/internal/application/notification/usecases"
	"github.com/sitedesk/sitedesk/internal/domain/notification"
	"github.com/sitedesk/sitedesk/internal/shared/config"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

type fakeMailer struct {
	err  error
	sent []*gomail.Message
}

func (f *fakeMailer) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func testEmailConfig() config.EmailConfig {
	return config.EmailConfig{FromAddress: "desk@example.com", FromName: "Desk"}
}

func TestSMTPSender_Send(t *testing.T) {
	fake := &fakeMailer{}
	sender := newSMTPSender(testEmailConfig(), fake, logger.NewNop())

	err := sender.Send(context.Background(), usecases.Message{
		EventID:  "evt-1",
		EventKey: notification.EventComplaintNew,
		Channel:  notification.ChannelEmail,
		Body:     "new complaint",
		To: []usecases.Contact{
			{UserID: 1, Name: "Kim", Email: "kim@example.com"},
			{UserID: 2, Name: "No Mail"},
		},
	})
	require.NoError(t, err)

	require.Len(t, fake.sent, 1)
	m := fake.sent[0]
	assert.Equal(t, []string{"evt-1"}, m.GetHeader(HeaderEventID))
	assert.Equal(t, []string{"[SiteDesk] COMPLAINT_NEW"}, m.GetHeader("Subject"))
	require.Len(t, m.GetHeader("To"), 1)
	assert.Contains(t, m.GetHeader("To")[0], "kim@example.com")
}

func TestSMTPSender_UsesSubject(t *testing.T) {
	fake := &fakeMailer{}
	sender := newSMTPSender(testEmailConfig(), fake, logger.NewNop())

	err := sender.Send(context.Background(), usecases.Message{
		EventID: "evt-2",
		Subject: "Complaint closed",
		To:      []usecases.Contact{{Email: "a@example.com"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Complaint closed"}, fake.sent[0].GetHeader("Subject"))
}

func TestSMTPSender_Errors(t *testing.T) {
	t.Run("no addressable contact", func(t *testing.T) {
		fake := &fakeMailer{}
		sender := newSMTPSender(testEmailConfig(), fake, logger.NewNop())

		err := sender.Send(context.Background(), usecases.Message{To: []usecases.Contact{{UserID: 1}}})
		assert.Error(t, err)
		assert.Empty(t, fake.sent)
	})

	t.Run("dial failure", func(t *testing.T) {
		sender := newSMTPSender(testEmailConfig(), &fakeMailer{err: errors.New("connection refused")}, logger.NewNop())

		err := sender.Send(context.Background(), usecases.Message{To: []usecases.Contact{{Email: "a@example.com"}}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		sender := newSMTPSender(testEmailConfig(), &fakeMailer{}, logger.NewNop())

		err := sender.Send(ctx, usecases.Message{To: []usecases.Contact{{Email: "a@example.com"}}})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
