// Package notification models the durable outbox written by workflow
// transitions and the templates used to render it.
package notification

import (
	"fmt"
	"time"

	"github.com/sitedesk/sitedesk/internal/shared/biztime"
)

const MaxErrorLength = 1000

// QueueEntry is one pending notice. Delivery outcomes only ever touch the
// entry itself, never the complaint that produced it.
type QueueEntry struct {
	id          uint
	eventID     string
	eventKey    EventKey
	complaintID *uint
	channel     string
	recipient   string
	subject     string
	payload     string
	data        map[string]interface{}
	status      Status
	attempts    int
	createdAt   time.Time
	claimedAt   *time.Time
	sentAt      *time.Time
	lastError   string
}

// NewQueueEntry creates a PENDING entry. eventID is the idempotency key
// handed to senders.
func NewQueueEntry(
	eventID string,
	eventKey EventKey,
	complaintID *uint,
	channel, recipient string,
	subject, payload string,
	data map[string]interface{},
) (*QueueEntry, error) {
	if eventID == "" {
		return nil, fmt.Errorf("event ID is required")
	}
	if !eventKey.IsValid() {
		return nil, fmt.Errorf("invalid event key: %s", eventKey)
	}
	if channel == "" {
		return nil, fmt.Errorf("channel is required")
	}
	if recipient == "" {
		return nil, fmt.Errorf("recipient is required")
	}
	if data == nil {
		data = map[string]interface{}{}
	}

	return &QueueEntry{
		eventID:     eventID,
		eventKey:    eventKey,
		complaintID: complaintID,
		channel:     channel,
		recipient:   recipient,
		subject:     subject,
		payload:     payload,
		data:        data,
		status:      StatusPending,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructQueueEntry(
	id uint,
	eventID string,
	eventKey EventKey,
	complaintID *uint,
	channel, recipient, subject, payload string,
	data map[string]interface{},
	status Status,
	attempts int,
	createdAt time.Time,
	claimedAt, sentAt *time.Time,
	lastError string,
) (*QueueEntry, error) {
	if id == 0 {
		return nil, fmt.Errorf("queue entry ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid queue status: %s", status)
	}
	if data == nil {
		data = map[string]interface{}{}
	}
	return &QueueEntry{
		id:          id,
		eventID:     eventID,
		eventKey:    eventKey,
		complaintID: complaintID,
		channel:     channel,
		recipient:   recipient,
		subject:     subject,
		payload:     payload,
		data:        data,
		status:      status,
		attempts:    attempts,
		createdAt:   createdAt,
		claimedAt:   claimedAt,
		sentAt:      sentAt,
		lastError:   lastError,
	}, nil
}

func (e *QueueEntry) ID() uint { return e.id }
func (e *QueueEntry) EventID() string { return e.eventID }
func (e *QueueEntry) EventKey() EventKey { return e.eventKey }
func (e *QueueEntry) ComplaintID() *uint { return e.complaintID }
func (e *QueueEntry) Channel() string { return e.channel }
func (e *QueueEntry) Recipient() string { return e.recipient }
func (e *QueueEntry) Subject() string { return e.subject }
func (e *QueueEntry) Payload() string { return e.payload }
func (e *QueueEntry) Data() map[string]interface{} { return e.data }
func (e *QueueEntry) Status() Status { return e.status }
func (e *QueueEntry) Attempts() int { return e.attempts }
func (e *QueueEntry) CreatedAt() time.Time { return e.createdAt }
func (e *QueueEntry) ClaimedAt() *time.Time { return e.claimedAt }
func (e *QueueEntry) SentAt() *time.Time { return e.sentAt }
func (e *QueueEntry) LastError() string { return e.lastError }

func (e *QueueEntry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("queue entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("queue entry ID cannot be zero")
	}
	e.id = id
	return nil
}

// TruncateError bounds a sender error before it is stored.
func TruncateError(msg string) string {
	r := []rune(msg)
	if len(r) <= MaxErrorLength {
		return msg
	}
	return string(r[:MaxErrorLength])
}
