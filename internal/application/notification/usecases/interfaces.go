package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/application/notification/dto"
	"github.com/sitedesk/sitedesk/internal/domain/notification"
)

// Contact is a resolved delivery address.
type Contact struct {
	UserID uint
	Name   string
	Email  string
	Phone  string
}

// Message is one queue entry ready for a channel.
type Message struct {
	EventID  string
	EventKey notification.EventKey
	Channel  string
	Subject  string
	Body     string
	To       []Contact
}

// Sender delivers messages for one channel. EventID is stable across
// retries and may be used by the transport for deduplication.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type DispatchExecutor interface {
	Execute(ctx context.Context) (*dto.DispatchResult, error)
}

type ClaimNotificationsExecutor interface {
	Execute(ctx context.Context, limit int) ([]*dto.QueueEntryDTO, error)
}

type ReportDeliveryExecutor interface {
	Execute(ctx context.Context, id uint, report dto.DeliveryReport) (*dto.QueueEntryDTO, error)
}

type ListQueueExecutor interface {
	Execute(ctx context.Context, query ListQueueQuery) (*ListQueueResult, error)
}

type RequeueFailedExecutor interface {
	Execute(ctx context.Context) (int64, error)
}

type UpsertTemplateExecutor interface {
	Execute(ctx context.Context, req dto.UpsertTemplateRequest) (*dto.TemplateDTO, error)
}

type ListTemplatesExecutor interface {
	Execute(ctx context.Context) ([]*dto.TemplateDTO, error)
}
