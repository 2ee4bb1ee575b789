package usecases

import (
	"context"
	"time"

	"github.com/sitedesk/sitedesk/internal/application/complaint/dto"
	"github.com/sitedesk/sitedesk/internal/domain/complaint"
	"github.com/sitedesk/sitedesk/internal/domain/notification"
	"github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
	"github.com/sitedesk/sitedesk/internal/shared/utils"
)

type AssignComplaintCommand struct {
	Actor          user.Actor
	ComplaintID    uint
	AssigneeUserID uint
	ScheduledAt    *time.Time
	Note           string
}

type AssignComplaintResult struct {
	Complaint *dto.ComplaintDTO `json:"complaint"`
	WorkOrder *dto.WorkOrderDTO `json:"work_order"`
}

type AssignComplaintUseCase struct {
	complaintRepo complaint.Repository
	workOrderRepo complaint.WorkOrderRepository
	userRepo      user.Repository
	txManager     TransactionRunner
	recorder      *transitionRecorder
	logger        logger.Interface
}

func NewAssignComplaintUseCase(
	complaintRepo complaint.Repository,
	workOrderRepo complaint.WorkOrderRepository,
	userRepo user.Repository,
	historyRepo complaint.HistoryRepository,
	txManager TransactionRunner,
	publisher notification.Publisher,
	observer TransitionObserver,
	logger logger.Interface,
) *AssignComplaintUseCase {
	return &AssignComplaintUseCase{
		complaintRepo: complaintRepo,
		workOrderRepo: workOrderRepo,
		userRepo:      userRepo,
		txManager:     txManager,
		recorder:      newTransitionRecorder(historyRepo, publisher, observer),
		logger:        logger,
	}
}

func (uc *AssignComplaintUseCase) Execute(ctx context.Context, cmd AssignComplaintCommand) (*AssignComplaintResult, error) {
	uc.logger.Infow("executing assign complaint use case",
		"complaint_id", cmd.ComplaintID,
		"assignee_id", cmd.AssigneeUserID,
		"assigned_by", cmd.Actor.UserID)

	if err := requireStaff(cmd.Actor); err != nil {
		uc.logger.Warnw("non-staff assign attempt", "user_id", cmd.Actor.UserID)
		return nil, err
	}
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid assign complaint command", "error", err)
		return nil, err
	}

	var (
		result    *complaint.Complaint
		workOrder *complaint.WorkOrder
		tr        complaint.Transition
	)
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		// The row lock serializes this guard with a concurrent triage that
		// could move the complaint to PRIVATE.
		c, err := loadVisible(txCtx, uc.complaintRepo, cmd.Actor, cmd.ComplaintID, true)
		if err != nil {
			return err
		}

		activeWork, err := hasActiveWorkOrder(txCtx, uc.workOrderRepo, c.ID(), 0)
		if err != nil {
			return err
		}

		expected := c.Version()
		tr, err = c.Assign(cmd.AssigneeUserID, activeWork)
		if err != nil {
			return domainError(err)
		}

		if err := uc.checkAssignee(txCtx, c, cmd.AssigneeUserID); err != nil {
			return err
		}

		wo, err := complaint.NewWorkOrder(c.ID(), cmd.AssigneeUserID, cmd.ScheduledAt, utils.NormalizeText(cmd.Note))
		if err != nil {
			return domainError(err)
		}
		if err := uc.complaintRepo.Update(txCtx, c, expected); err != nil {
			return err
		}
		if err := uc.workOrderRepo.Create(txCtx, wo); err != nil {
			return err
		}
		if err := uc.recorder.record(txCtx, c, tr, cmd.Actor.UserID, cmd.Note); err != nil {
			return err
		}

		recipients := []string{
			notification.UserRecipient(cmd.AssigneeUserID),
			notification.UserRecipient(c.ReporterUserID()),
		}
		extra := map[string]interface{}{
			"assigneeUserId": cmd.AssigneeUserID,
			"workOrderId":    wo.ID(),
		}
		if err := uc.recorder.publish(txCtx, notification.EventComplaintAssigned, c, recipients, extra); err != nil {
			return err
		}

		result, workOrder = c, wo
		return nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			uc.logger.Warnw("assignment refused", "error", err, "complaint_id", cmd.ComplaintID)
		} else {
			uc.logger.Errorw("failed to assign complaint", "error", err, "complaint_id", cmd.ComplaintID)
		}
		return nil, storageError(err, "failed to assign complaint")
	}
	uc.recorder.observe(tr)

	uc.logger.Infow("complaint assigned",
		"complaint_id", result.ID(),
		"work_order_id", workOrder.ID(),
		"assignee_id", cmd.AssigneeUserID)

	return &AssignComplaintResult{
		Complaint: dto.ToComplaintDTO(result),
		WorkOrder: dto.ToWorkOrderDTO(workOrder),
	}, nil
}

func (uc *AssignComplaintUseCase) validateCommand(cmd AssignComplaintCommand) error {
	if cmd.ComplaintID == 0 {
		return errors.NewValidationError("complaint ID is required")
	}
	if cmd.AssigneeUserID == 0 {
		return errors.NewValidationError("assignee is required")
	}
	if len([]rune(cmd.Note)) > complaint.MaxResultNoteLength {
		return errors.NewValidationError("note is too long")
	}
	return nil
}

// checkAssignee requires an active staff member of the complaint's site.
// Super admins may take work anywhere.
func (uc *AssignComplaintUseCase) checkAssignee(ctx context.Context, c *complaint.Complaint, assigneeID uint) error {
	assignee, err := uc.userRepo.GetByID(ctx, assigneeID)
	if err != nil {
		return err
	}
	if assignee == nil {
		return errors.NewNotFoundError("assignee not found")
	}
	actor := assignee.Actor()
	if !assignee.IsActive() || !actor.IsStaff() || !actor.CanSeeSite(c.SiteCode()) {
		return errors.NewValidationError("assignee must be active staff of the complaint's site")
	}
	return nil
}
