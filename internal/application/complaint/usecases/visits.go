package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/application/complaint/dto"
	"github.com/sitedesk/sitedesk/internal/domain/complaint"
	vo "github.com/sitedesk/sitedesk/internal/domain/complaint/valueobjects"
	"github.com/sitedesk/sitedesk/internal/domain/notification"
	"github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
	"github.com/sitedesk/sitedesk/internal/shared/utils"
)

type CreateVisitCommand struct {
	Actor       user.Actor
	ComplaintID uint
	// VisitorUserID defaults to the acting user.
	VisitorUserID uint
	VisitReason   string
	ResultNote    string
}

type CreateVisitUseCase struct {
	complaintRepo complaint.Repository
	visitRepo     complaint.VisitRepository
	txManager     TransactionRunner
	recorder      *transitionRecorder
	logger        logger.Interface
}

func NewCreateVisitUseCase(
	complaintRepo complaint.Repository,
	visitRepo complaint.VisitRepository,
	txManager TransactionRunner,
	publisher notification.Publisher,
	logger logger.Interface,
) *CreateVisitUseCase {
	return &CreateVisitUseCase{
		complaintRepo: complaintRepo,
		visitRepo:     visitRepo,
		txManager:     txManager,
		recorder:      newTransitionRecorder(nil, publisher, nil),
		logger:        logger,
	}
}

func (uc *CreateVisitUseCase) Execute(ctx context.Context, cmd CreateVisitCommand) (*dto.VisitDTO, error) {
	uc.logger.Infow("executing create visit use case",
		"complaint_id", cmd.ComplaintID,
		"visit_reason", cmd.VisitReason,
		"created_by", cmd.Actor.UserID)

	if err := requireStaff(cmd.Actor); err != nil {
		uc.logger.Warnw("non-staff visit attempt", "user_id", cmd.Actor.UserID)
		return nil, err
	}
	reason, err := vo.NewVisitReason(cmd.VisitReason)
	if err != nil {
		uc.logger.Errorw("invalid create visit command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}
	visitor := cmd.VisitorUserID
	if visitor == 0 {
		visitor = cmd.Actor.UserID
	}

	var visit *complaint.VisitLog
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		c, err := loadVisible(txCtx, uc.complaintRepo, cmd.Actor, cmd.ComplaintID, false)
		if err != nil {
			return err
		}

		v, err := complaint.NewVisitLog(c, visitor, reason, utils.NormalizeText(cmd.ResultNote))
		if err != nil {
			return domainError(err)
		}
		if err := uc.visitRepo.Create(txCtx, v); err != nil {
			return err
		}

		extra := map[string]interface{}{
			"visitId":     v.ID(),
			"visitReason": v.VisitReason().String(),
		}
		if err := uc.recorder.publish(txCtx, notification.EventVisitLogged, c, reporterRecipient(c), extra); err != nil {
			return err
		}
		visit = v
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create visit", "error", err, "complaint_id", cmd.ComplaintID)
		return nil, storageError(err, "failed to create visit")
	}

	uc.logger.Infow("visit logged", "visit_id", visit.ID(), "complaint_id", cmd.ComplaintID)
	return dto.ToVisitDTO(visit), nil
}

type CheckoutVisitCommand struct {
	Actor      user.Actor
	VisitID    uint
	ResultNote *string
}

type CheckoutVisitUseCase struct {
	complaintRepo complaint.Repository
	visitRepo     complaint.VisitRepository
	txManager     TransactionRunner
	logger        logger.Interface
}

func NewCheckoutVisitUseCase(
	complaintRepo complaint.Repository,
	visitRepo complaint.VisitRepository,
	txManager TransactionRunner,
	logger logger.Interface,
) *CheckoutVisitUseCase {
	return &CheckoutVisitUseCase{
		complaintRepo: complaintRepo,
		visitRepo:     visitRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

// Execute checks the visit out. A visit that is already checked out is
// returned unchanged.
func (uc *CheckoutVisitUseCase) Execute(ctx context.Context, cmd CheckoutVisitCommand) (*dto.VisitDTO, error) {
	uc.logger.Infow("executing checkout visit use case",
		"visit_id", cmd.VisitID,
		"checked_out_by", cmd.Actor.UserID)

	if err := requireStaff(cmd.Actor); err != nil {
		uc.logger.Warnw("non-staff checkout attempt", "user_id", cmd.Actor.UserID)
		return nil, err
	}
	if cmd.VisitID == 0 {
		return nil, errors.NewValidationError("visit ID is required")
	}

	var visit *complaint.VisitLog
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		v, err := uc.visitRepo.GetByIDForUpdate(txCtx, cmd.VisitID)
		if err != nil {
			return err
		}
		if v == nil {
			return errors.NewNotFoundError("visit not found")
		}
		if _, err := loadVisible(txCtx, uc.complaintRepo, cmd.Actor, v.ComplaintID(), false); err != nil {
			if errors.IsNotFoundError(err) {
				return errors.NewNotFoundError("visit not found")
			}
			return err
		}

		var note *string
		if cmd.ResultNote != nil {
			n := utils.NormalizeText(*cmd.ResultNote)
			note = &n
		}
		changed, err := v.Checkout(note)
		if err != nil {
			return domainError(err)
		}
		if changed {
			if err := uc.visitRepo.Checkout(txCtx, v); err != nil {
				return err
			}
		}
		visit = v
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to check out visit", "error", err, "visit_id", cmd.VisitID)
		return nil, storageError(err, "failed to check out visit")
	}

	uc.logger.Infow("visit checked out", "visit_id", visit.ID(), "check_out_at", visit.CheckOutAt())
	return dto.ToVisitDTO(visit), nil
}
