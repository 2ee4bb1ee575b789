package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/application/complaint/dto"
	"github.com/sitedesk/sitedesk/internal/domain/complaint"
	"github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

type ListWorkOrdersQuery struct {
	Actor       user.Actor
	ComplaintID uint
}

type ListWorkOrdersUseCase struct {
	complaintRepo complaint.Repository
	workOrderRepo complaint.WorkOrderRepository
	logger        logger.Interface
}

func NewListWorkOrdersUseCase(
	complaintRepo complaint.Repository,
	workOrderRepo complaint.WorkOrderRepository,
	logger logger.Interface,
) *ListWorkOrdersUseCase {
	return &ListWorkOrdersUseCase{
		complaintRepo: complaintRepo,
		workOrderRepo: workOrderRepo,
		logger:        logger,
	}
}

func (uc *ListWorkOrdersUseCase) Execute(ctx context.Context, query ListWorkOrdersQuery) ([]*dto.WorkOrderDTO, error) {
	c, err := loadVisible(ctx, uc.complaintRepo, query.Actor, query.ComplaintID, false)
	if err != nil {
		return nil, storageError(err, "failed to list work orders")
	}

	workOrders, err := uc.workOrderRepo.ListByComplaint(ctx, c.ID())
	if err != nil {
		uc.logger.Errorw("failed to list work orders", "error", err, "complaint_id", c.ID())
		return nil, storageError(err, "failed to list work orders")
	}
	return dto.ToWorkOrderDTOList(workOrders), nil
}
