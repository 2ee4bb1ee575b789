package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/application/notification/dto"
	"github.com/sitedesk/sitedesk/internal/domain/notification"
	"github.com/sitedesk/sitedesk/internal/shared/biztime"
	"github.com/sitedesk/sitedesk/internal/shared/config"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
	"github.com/sitedesk/sitedesk/internal/shared/utils"
)

const maxClaimLimit = 500

// ClaimNotificationsUseCase leases pending entries to an external worker.
type ClaimNotificationsUseCase struct {
	queueRepo notification.QueueRepository
	cfg       config.NotificationConfig
	logger    logger.Interface
}

func NewClaimNotificationsUseCase(queueRepo notification.QueueRepository, cfg config.NotificationConfig, logger logger.Interface) *ClaimNotificationsUseCase {
	return &ClaimNotificationsUseCase{queueRepo: queueRepo, cfg: cfg, logger: logger}
}

func (uc *ClaimNotificationsUseCase) Execute(ctx context.Context, limit int) ([]*dto.QueueEntryDTO, error) {
	if limit <= 0 {
		limit = uc.cfg.BatchSize
	}
	if limit > maxClaimLimit {
		limit = maxClaimLimit
	}

	now := biztime.NowUTC()
	entries, err := uc.queueRepo.ClaimPending(ctx, limit, now, now.Add(-uc.cfg.ClaimLease))
	if err != nil {
		uc.logger.Errorw("failed to claim notifications", "error", err)
		return nil, errors.NewInternalError("failed to claim notifications")
	}

	uc.logger.Infow("notifications claimed", "count", len(entries), "limit", limit)
	return dto.ToQueueEntryDTOList(entries), nil
}

// ReportDeliveryUseCase records the outcome an external worker reports.
type ReportDeliveryUseCase struct {
	queueRepo notification.QueueRepository
	logger    logger.Interface
}

func NewReportDeliveryUseCase(queueRepo notification.QueueRepository, logger logger.Interface) *ReportDeliveryUseCase {
	return &ReportDeliveryUseCase{queueRepo: queueRepo, logger: logger}
}

func (uc *ReportDeliveryUseCase) Execute(ctx context.Context, id uint, report dto.DeliveryReport) (*dto.QueueEntryDTO, error) {
	uc.logger.Infow("executing report delivery use case", "id", id, "status", report.Status)

	if id == 0 {
		return nil, errors.NewValidationError("notification ID is required")
	}

	var (
		updated bool
		err     error
	)
	switch notification.Status(report.Status) {
	case notification.StatusSent:
		updated, err = uc.queueRepo.MarkSent(ctx, id, biztime.NowUTC())
	case notification.StatusFailed:
		msg := report.Error
		if msg == "" {
			msg = "delivery failed"
		}
		updated, err = uc.queueRepo.MarkFailed(ctx, id, notification.TruncateError(msg))
	default:
		return nil, errors.NewValidationError("status must be SENT or FAILED")
	}
	if err != nil {
		uc.logger.Errorw("failed to record delivery", "id", id, "error", err)
		return nil, errors.NewInternalError("failed to record delivery")
	}

	entry, err := uc.queueRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to load notification", "id", id, "error", err)
		return nil, errors.NewInternalError("failed to record delivery")
	}
	if entry == nil {
		return nil, errors.NewNotFoundError("notification not found")
	}
	if !updated {
		uc.logger.Warnw("delivery report for entry that is not pending", "id", id, "status", entry.Status())
		return nil, errors.NewConflictError("notification is not pending", entry.Status().String())
	}
	return dto.ToQueueEntryDTO(entry), nil
}

type ListQueueQuery struct {
	Status      string
	EventKey    string
	ComplaintID *uint
	Page        int
	PageSize    int
}

type ListQueueResult struct {
	Entries  []*dto.QueueEntryDTO `json:"items"`
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
}

type ListQueueUseCase struct {
	queueRepo notification.QueueRepository
	logger    logger.Interface
}

func NewListQueueUseCase(queueRepo notification.QueueRepository, logger logger.Interface) *ListQueueUseCase {
	return &ListQueueUseCase{queueRepo: queueRepo, logger: logger}
}

func (uc *ListQueueUseCase) Execute(ctx context.Context, query ListQueueQuery) (*ListQueueResult, error) {
	filter := notification.QueueFilter{ComplaintID: query.ComplaintID}
	if query.Status != "" {
		status := notification.Status(query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid notification status: " + query.Status)
		}
		filter.Status = &status
	}
	if query.EventKey != "" {
		key, err := notification.NewEventKey(query.EventKey)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.EventKey = &key
	}
	pagination := utils.ValidatePagination(query.Page, query.PageSize, maxClaimLimit)
	filter.Page = pagination.Page
	filter.PageSize = pagination.PageSize

	entries, total, err := uc.queueRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "error", err)
		return nil, errors.NewInternalError("failed to list notifications")
	}
	return &ListQueueResult{
		Entries:  dto.ToQueueEntryDTOList(entries),
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}

type RequeueFailedUseCase struct {
	queueRepo notification.QueueRepository
	cfg       config.NotificationConfig
	logger    logger.Interface
}

func NewRequeueFailedUseCase(queueRepo notification.QueueRepository, cfg config.NotificationConfig, logger logger.Interface) *RequeueFailedUseCase {
	return &RequeueFailedUseCase{queueRepo: queueRepo, cfg: cfg, logger: logger}
}

func (uc *RequeueFailedUseCase) Execute(ctx context.Context) (int64, error) {
	n, err := uc.queueRepo.RequeueFailed(ctx, uc.cfg.MaxAttempts)
	if err != nil {
		uc.logger.Errorw("failed to requeue notifications", "error", err)
		return 0, errors.NewInternalError("failed to requeue notifications")
	}
	uc.logger.Infow("failed notifications requeued", "count", n, "max_attempts", uc.cfg.MaxAttempts)
	return n, nil
}
