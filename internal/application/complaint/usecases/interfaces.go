package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/application/complaint/dto"
	vo "github.com/sitedesk/sitedesk/internal/domain/complaint/valueobjects"
)

// TransactionRunner runs fn in one unit of work. Repositories called with the
// context handed to fn join it.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// TransitionObserver is told about every committed status change.
type TransitionObserver interface {
	ObserveTransition(from *vo.ComplaintStatus, to vo.ComplaintStatus)
}

type SubmitComplaintExecutor interface {
	Execute(ctx context.Context, cmd SubmitComplaintCommand) (*dto.ComplaintDTO, error)
}

type TriageComplaintExecutor interface {
	Execute(ctx context.Context, cmd TriageComplaintCommand) (*dto.ComplaintDTO, error)
}

type AssignComplaintExecutor interface {
	Execute(ctx context.Context, cmd AssignComplaintCommand) (*AssignComplaintResult, error)
}

type CloseComplaintExecutor interface {
	Execute(ctx context.Context, cmd CloseComplaintCommand) (*dto.ComplaintDTO, error)
}

type GetComplaintExecutor interface {
	Execute(ctx context.Context, query GetComplaintQuery) (*dto.ComplaintDetailDTO, error)
}

type ListComplaintsExecutor interface {
	Execute(ctx context.Context, query ListComplaintsQuery) (*ListComplaintsResult, error)
}

type GetTimelineExecutor interface {
	Execute(ctx context.Context, query GetTimelineQuery) ([]*dto.StatusHistoryDTO, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, query ListCommentsQuery) ([]*dto.CommentDTO, error)
}

type GetStatsExecutor interface {
	Execute(ctx context.Context, query GetStatsQuery) (*dto.StatsDTO, error)
}

type PatchWorkOrderExecutor interface {
	Execute(ctx context.Context, cmd PatchWorkOrderCommand) (*PatchWorkOrderResult, error)
}

type ListWorkOrdersExecutor interface {
	Execute(ctx context.Context, query ListWorkOrdersQuery) ([]*dto.WorkOrderDTO, error)
}

type CreateVisitExecutor interface {
	Execute(ctx context.Context, cmd CreateVisitCommand) (*dto.VisitDTO, error)
}

type CheckoutVisitExecutor interface {
	Execute(ctx context.Context, cmd CheckoutVisitCommand) (*dto.VisitDTO, error)
}
