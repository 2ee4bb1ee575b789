package notification

import "context"

// Event is a workflow notification before it is fanned out to queue
// entries, one per recipient.
type Event struct {
	Key         EventKey
	ComplaintID *uint
	Recipients  []string
	Data        map[string]interface{}
}

// Publisher turns events into queue entries. Implementations write through
// the context's transaction so that entries commit with the transition.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
