package notification

import "fmt"

// EventKey identifies the workflow event an entry was produced for.
type EventKey string

const (
	EventComplaintNew      EventKey = "COMPLAINT_NEW"
	EventComplaintTriaged  EventKey = "COMPLAINT_TRIAGED"
	EventGuidanceSent      EventKey = "GUIDANCE_SENT"
	EventComplaintAssigned EventKey = "COMPLAINT_ASSIGNED"
	EventWorkStatus        EventKey = "WORK_STATUS"
	EventComplaintClosed   EventKey = "COMPLAINT_CLOSED"
	EventVisitLogged       EventKey = "VISIT_LOGGED"
)

var validEventKeys = map[EventKey]bool{
	EventComplaintNew:      true,
	EventComplaintTriaged:  true,
	EventGuidanceSent:      true,
	EventComplaintAssigned: true,
	EventWorkStatus:        true,
	EventComplaintClosed:   true,
	EventVisitLogged:       true,
}

func (k EventKey) String() string {
	return string(k)
}

func (k EventKey) IsValid() bool {
	return validEventKeys[k]
}

func NewEventKey(s string) (EventKey, error) {
	k := EventKey(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid event key: %s", s)
	}
	return k, nil
}

// Status is the delivery state of a queue entry.
type Status string

const (
	StatusPending Status = "PENDING"
	StatusSent    Status = "SENT"
	StatusFailed  Status = "FAILED"
)

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusSent || s == StatusFailed
}

func (s Status) String() string {
	return string(s)
}

// Channels understood by the built-in dispatcher. Any non-empty channel may
// be queued; unknown ones are handled by the log sender.
const (
	ChannelSMS   = "sms"
	ChannelEmail = "email"
	ChannelChat  = "chat"
)
