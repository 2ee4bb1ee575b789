package complaint

import (
	"context"
	"time"

	vo "github.com/sitedesk/sitedesk/internal/domain/complaint/valueobjects"
)

// Repository persists complaints. Lookups return nil, nil when the row does
// not exist.
type Repository interface {
	Create(ctx context.Context, c *Complaint) error
	// Update writes a mutated complaint guarded by its previous version.
	Update(ctx context.Context, c *Complaint, expectedVersion int) error
	GetByID(ctx context.Context, id uint) (*Complaint, error)
	// GetByIDForUpdate locks the row for the rest of the surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id uint) (*Complaint, error)
	List(ctx context.Context, filter ListFilter) ([]*Complaint, int64, error)
	Stats(ctx context.Context, filter StatsFilter) (*Stats, error)
}

// ListFilter narrows a complaint listing. Empty fields do not filter.
type ListFilter struct {
	SiteCode       string
	ReporterUserID *uint
	Status         *vo.ComplaintStatus
	Scope          *vo.Scope
	Page           int
	PageSize       int
}

// StatsFilter selects the complaints to aggregate. An empty SiteCode covers
// all sites.
type StatsFilter struct {
	SiteCode string
	// DelayedBefore is the creation cutoff after which an unresolved
	// complaint counts as delayed.
	DelayedBefore time.Time
}

type WorkOrderRepository interface {
	Create(ctx context.Context, w *WorkOrder) error
	Update(ctx context.Context, w *WorkOrder) error
	GetByID(ctx context.Context, id uint) (*WorkOrder, error)
	GetByIDForUpdate(ctx context.Context, id uint) (*WorkOrder, error)
	ListByComplaint(ctx context.Context, complaintID uint) ([]*WorkOrder, error)
	CountByComplaint(ctx context.Context, complaintID uint) (int64, error)
}

type VisitRepository interface {
	Create(ctx context.Context, v *VisitLog) error
	// Checkout persists check_out_at only if it is still unset.
	Checkout(ctx context.Context, v *VisitLog) error
	GetByID(ctx context.Context, id uint) (*VisitLog, error)
	GetByIDForUpdate(ctx context.Context, id uint) (*VisitLog, error)
	ListByComplaint(ctx context.Context, complaintID uint) ([]*VisitLog, error)
}

// HistoryRepository is append-only.
type HistoryRepository interface {
	Append(ctx context.Context, h *StatusHistory) error
	ListByComplaint(ctx context.Context, complaintID uint) ([]*StatusHistory, error)
}

// CommentRepository is append-only.
type CommentRepository interface {
	Create(ctx context.Context, c *Comment) error
	ListByComplaint(ctx context.Context, complaintID uint, includeInternal bool) ([]*Comment, error)
}

// SequenceAllocator hands out per-UTC-day sequence numbers. Implementations
// must be atomic across concurrent callers and processes.
type SequenceAllocator interface {
	Next(ctx context.Context, dayKey string) (int64, error)
}
