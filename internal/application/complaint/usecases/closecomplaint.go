package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/application/complaint/dto"
	"github.com/sitedesk/sitedesk/internal/domain/complaint"
	"github.com/sitedesk/sitedesk/internal/domain/notification"
	"github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

type CloseComplaintCommand struct {
	Actor       user.Actor
	ComplaintID uint
	Note        string
}

type CloseComplaintUseCase struct {
	complaintRepo complaint.Repository
	txManager     TransactionRunner
	recorder      *transitionRecorder
	logger        logger.Interface
}

func NewCloseComplaintUseCase(
	complaintRepo complaint.Repository,
	historyRepo complaint.HistoryRepository,
	txManager TransactionRunner,
	publisher notification.Publisher,
	observer TransitionObserver,
	logger logger.Interface,
) *CloseComplaintUseCase {
	return &CloseComplaintUseCase{
		complaintRepo: complaintRepo,
		txManager:     txManager,
		recorder:      newTransitionRecorder(historyRepo, publisher, observer),
		logger:        logger,
	}
}

func (uc *CloseComplaintUseCase) Execute(ctx context.Context, cmd CloseComplaintCommand) (*dto.ComplaintDTO, error) {
	uc.logger.Infow("executing close complaint use case",
		"complaint_id", cmd.ComplaintID,
		"closed_by", cmd.Actor.UserID)

	if err := requireStaff(cmd.Actor); err != nil {
		uc.logger.Warnw("non-staff close attempt", "user_id", cmd.Actor.UserID)
		return nil, err
	}

	var (
		result *complaint.Complaint
		tr     complaint.Transition
	)
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		c, err := loadVisible(txCtx, uc.complaintRepo, cmd.Actor, cmd.ComplaintID, true)
		if err != nil {
			return err
		}

		expected := c.Version()
		tr, err = c.Close()
		if err != nil {
			return domainError(err)
		}
		if err := uc.complaintRepo.Update(txCtx, c, expected); err != nil {
			return err
		}
		if err := uc.recorder.record(txCtx, c, tr, cmd.Actor.UserID, cmd.Note); err != nil {
			return err
		}
		if err := uc.recorder.publish(txCtx, notification.EventComplaintClosed, c, reporterRecipient(c), nil); err != nil {
			return err
		}

		result = c
		return nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			uc.logger.Warnw("close refused", "error", err, "complaint_id", cmd.ComplaintID)
		} else {
			uc.logger.Errorw("failed to close complaint", "error", err, "complaint_id", cmd.ComplaintID)
		}
		return nil, storageError(err, "failed to close complaint")
	}
	uc.recorder.observe(tr)

	uc.logger.Infow("complaint closed", "complaint_id", result.ID())
	return dto.ToComplaintDTO(result), nil
}
