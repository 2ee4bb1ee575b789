package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/application/complaint/dto"
	"github.com/sitedesk/sitedesk/internal/domain/complaint"
	"github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

type GetComplaintQuery struct {
	Actor       user.Actor
	ComplaintID uint
}

type GetComplaintUseCase struct {
	complaintRepo complaint.Repository
	workOrderRepo complaint.WorkOrderRepository
	visitRepo     complaint.VisitRepository
	commentRepo   complaint.CommentRepository
	historyRepo   complaint.HistoryRepository
	logger        logger.Interface
}

func NewGetComplaintUseCase(
	complaintRepo complaint.Repository,
	workOrderRepo complaint.WorkOrderRepository,
	visitRepo complaint.VisitRepository,
	commentRepo complaint.CommentRepository,
	historyRepo complaint.HistoryRepository,
	logger logger.Interface,
) *GetComplaintUseCase {
	return &GetComplaintUseCase{
		complaintRepo: complaintRepo,
		workOrderRepo: workOrderRepo,
		visitRepo:     visitRepo,
		commentRepo:   commentRepo,
		historyRepo:   historyRepo,
		logger:        logger,
	}
}

func (uc *GetComplaintUseCase) Execute(ctx context.Context, query GetComplaintQuery) (*dto.ComplaintDetailDTO, error) {
	uc.logger.Debugw("executing get complaint use case",
		"complaint_id", query.ComplaintID,
		"user_id", query.Actor.UserID)

	c, err := loadVisible(ctx, uc.complaintRepo, query.Actor, query.ComplaintID, false)
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to get complaint", "error", err, "complaint_id", query.ComplaintID)
		}
		return nil, storageError(err, "failed to get complaint")
	}

	workOrders, err := uc.workOrderRepo.ListByComplaint(ctx, c.ID())
	if err != nil {
		uc.logger.Errorw("failed to list work orders", "error", err, "complaint_id", c.ID())
		return nil, storageError(err, "failed to get complaint")
	}
	visits, err := uc.visitRepo.ListByComplaint(ctx, c.ID())
	if err != nil {
		uc.logger.Errorw("failed to list visits", "error", err, "complaint_id", c.ID())
		return nil, storageError(err, "failed to get complaint")
	}
	comments, err := uc.commentRepo.ListByComplaint(ctx, c.ID(), !query.Actor.IsResident())
	if err != nil {
		uc.logger.Errorw("failed to list comments", "error", err, "complaint_id", c.ID())
		return nil, storageError(err, "failed to get complaint")
	}
	history, err := uc.historyRepo.ListByComplaint(ctx, c.ID())
	if err != nil {
		uc.logger.Errorw("failed to list status history", "error", err, "complaint_id", c.ID())
		return nil, storageError(err, "failed to get complaint")
	}

	return &dto.ComplaintDetailDTO{
		ComplaintDTO: *dto.ToComplaintDTO(c),
		WorkOrders:   dto.ToWorkOrderDTOList(workOrders),
		Visits:       dto.ToVisitDTOList(visits),
		Comments:     dto.ToCommentDTOList(comments),
		Timeline:     dto.ToStatusHistoryDTOList(history),
	}, nil
}

type GetTimelineQuery struct {
	Actor       user.Actor
	ComplaintID uint
}

type GetTimelineUseCase struct {
	complaintRepo complaint.Repository
	historyRepo   complaint.HistoryRepository
	logger        logger.Interface
}

func NewGetTimelineUseCase(
	complaintRepo complaint.Repository,
	historyRepo complaint.HistoryRepository,
	logger logger.Interface,
) *GetTimelineUseCase {
	return &GetTimelineUseCase{
		complaintRepo: complaintRepo,
		historyRepo:   historyRepo,
		logger:        logger,
	}
}

// Execute returns the status history oldest first.
func (uc *GetTimelineUseCase) Execute(ctx context.Context, query GetTimelineQuery) ([]*dto.StatusHistoryDTO, error) {
	c, err := loadVisible(ctx, uc.complaintRepo, query.Actor, query.ComplaintID, false)
	if err != nil {
		return nil, storageError(err, "failed to get timeline")
	}

	history, err := uc.historyRepo.ListByComplaint(ctx, c.ID())
	if err != nil {
		uc.logger.Errorw("failed to list status history", "error", err, "complaint_id", c.ID())
		return nil, storageError(err, "failed to get timeline")
	}
	return dto.ToStatusHistoryDTOList(history), nil
}
