package notification

import (
	"context"
	"time"
)

type QueueRepository interface {
	Enqueue(ctx context.Context, entry *QueueEntry) error
	GetByID(ctx context.Context, id uint) (*QueueEntry, error)
	// ClaimPending leases up to limit PENDING entries whose previous lease
	// expired before leaseCutoff. A claimed entry is returned to one caller only.
	ClaimPending(ctx context.Context, limit int, now, leaseCutoff time.Time) ([]*QueueEntry, error)
	// MarkSent returns false when the entry is not PENDING.
	MarkSent(ctx context.Context, id uint, sentAt time.Time) (bool, error)
	// MarkFailed records the error and increments attempts; false when the
	// entry is not PENDING.
	MarkFailed(ctx context.Context, id uint, errMsg string) (bool, error)
	// RequeueFailed moves FAILED entries with attempts below maxAttempts back
	// to PENDING and returns how many moved.
	RequeueFailed(ctx context.Context, maxAttempts int) (int64, error)
	List(ctx context.Context, filter QueueFilter) ([]*QueueEntry, int64, error)
}

type QueueFilter struct {
	Status      *Status
	EventKey    *EventKey
	ComplaintID *uint
	Page        int
	PageSize    int
}

type TemplateRepository interface {
	// Upsert is keyed by event key and channel.
	Upsert(ctx context.Context, t *Template) error
	// Get returns nil, nil when no template is registered.
	Get(ctx context.Context, eventKey EventKey, channel string) (*Template, error)
	List(ctx context.Context) ([]*Template, error)
}
