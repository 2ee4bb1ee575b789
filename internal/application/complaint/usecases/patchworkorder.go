package usecases

import (
	"context"
	"fmt"

	"github.com/sitedesk/sitedesk/internal/application/complaint/dto"
	"github.com/sitedesk/sitedesk/internal/domain/complaint"
	vo "github.com/sitedesk/sitedesk/internal/domain/complaint/valueobjects"
	"github.com/sitedesk/sitedesk/internal/domain/notification"
	"github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

type PatchWorkOrderCommand struct {
	Actor       user.Actor
	WorkOrderID uint
	Status      string
	ResultNote  *string
}

type PatchWorkOrderResult struct {
	WorkOrder *dto.WorkOrderDTO `json:"work_order"`
	Complaint *dto.ComplaintDTO `json:"complaint"`
}

type PatchWorkOrderUseCase struct {
	complaintRepo complaint.Repository
	workOrderRepo complaint.WorkOrderRepository
	txManager     TransactionRunner
	recorder      *transitionRecorder
	logger        logger.Interface
}

func NewPatchWorkOrderUseCase(
	complaintRepo complaint.Repository,
	workOrderRepo complaint.WorkOrderRepository,
	historyRepo complaint.HistoryRepository,
	txManager TransactionRunner,
	publisher notification.Publisher,
	observer TransitionObserver,
	logger logger.Interface,
) *PatchWorkOrderUseCase {
	return &PatchWorkOrderUseCase{
		complaintRepo: complaintRepo,
		workOrderRepo: workOrderRepo,
		txManager:     txManager,
		recorder:      newTransitionRecorder(historyRepo, publisher, observer),
		logger:        logger,
	}
}

func (uc *PatchWorkOrderUseCase) Execute(ctx context.Context, cmd PatchWorkOrderCommand) (*PatchWorkOrderResult, error) {
	uc.logger.Infow("executing patch work order use case",
		"work_order_id", cmd.WorkOrderID,
		"status", cmd.Status,
		"patched_by", cmd.Actor.UserID)

	if err := requireStaff(cmd.Actor); err != nil {
		uc.logger.Warnw("non-staff work order patch attempt", "user_id", cmd.Actor.UserID)
		return nil, err
	}
	if cmd.WorkOrderID == 0 {
		return nil, errors.NewValidationError("work order ID is required")
	}
	next, err := vo.NewWorkOrderStatus(cmd.Status)
	if err != nil {
		uc.logger.Errorw("invalid patch work order command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	var (
		result      *PatchWorkOrderResult
		transitions []complaint.Transition
	)
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.workOrderRepo.GetByID(txCtx, cmd.WorkOrderID)
		if err != nil {
			return err
		}
		if existing == nil {
			return errors.NewNotFoundError("work order not found")
		}

		// Lock order is complaint then work order, the same as assign.
		c, err := loadVisible(txCtx, uc.complaintRepo, cmd.Actor, existing.ComplaintID(), true)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return errors.NewNotFoundError("work order not found")
			}
			return err
		}
		wo, err := uc.workOrderRepo.GetByIDForUpdate(txCtx, cmd.WorkOrderID)
		if err != nil {
			return err
		}
		if wo == nil {
			return errors.NewNotFoundError("work order not found")
		}

		changed, err := wo.ChangeStatus(next, cmd.ResultNote)
		if err != nil {
			return domainError(err)
		}
		if err := uc.workOrderRepo.Update(txCtx, wo); err != nil {
			return err
		}

		if changed {
			transitions, err = uc.cascade(txCtx, c, wo, cmd.Actor.UserID)
			if err != nil {
				return err
			}
		}

		result = &PatchWorkOrderResult{
			WorkOrder: dto.ToWorkOrderDTO(wo),
			Complaint: dto.ToComplaintDTO(c),
		}
		return nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			uc.logger.Warnw("work order patch refused", "error", err, "work_order_id", cmd.WorkOrderID)
		} else {
			uc.logger.Errorw("failed to patch work order", "error", err, "work_order_id", cmd.WorkOrderID)
		}
		return nil, storageError(err, "failed to update work order")
	}
	for _, tr := range transitions {
		uc.recorder.observe(tr)
	}

	uc.logger.Infow("work order updated",
		"work_order_id", cmd.WorkOrderID,
		"status", result.WorkOrder.Status,
		"complaint_status", result.Complaint.Status)

	return result, nil
}

// cascade moves the parent complaint along with its work order and
// announces the new work status. DISPATCHED starts work on an ASSIGNED
// complaint and DONE completes it. Canceling the last active work order of
// an IN_PROGRESS complaint returns it to ASSIGNED for reassignment.
func (uc *PatchWorkOrderUseCase) cascade(ctx context.Context, c *complaint.Complaint, wo *complaint.WorkOrder, actorID uint) ([]complaint.Transition, error) {
	var (
		tr    complaint.Transition
		moved bool
	)
	expected := c.Version()
	switch wo.Status() {
	case vo.WorkOrderDispatched:
		tr, moved = c.StartWork()
	case vo.WorkOrderDone:
		tr, moved = c.CompleteWork()
	case vo.WorkOrderCanceled:
		active, err := hasActiveWorkOrder(ctx, uc.workOrderRepo, c.ID(), wo.ID())
		if err != nil {
			return nil, err
		}
		if !active {
			tr, moved = c.ReleaseWork()
		}
	}

	var transitions []complaint.Transition
	if moved {
		if err := uc.complaintRepo.Update(ctx, c, expected); err != nil {
			return nil, err
		}
		note := fmt.Sprintf("work order %d %s", wo.ID(), wo.Status())
		if err := uc.recorder.record(ctx, c, tr, actorID, note); err != nil {
			return nil, err
		}
		transitions = append(transitions, tr)
	}

	extra := map[string]interface{}{
		"workOrderId":     wo.ID(),
		"workOrderStatus": wo.Status().String(),
		"resultNote":      wo.ResultNote(),
	}
	if err := uc.recorder.publish(ctx, notification.EventWorkStatus, c, reporterRecipient(c), extra); err != nil {
		return nil, err
	}
	return transitions, nil
}
