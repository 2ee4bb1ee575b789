package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/application/complaint/dto"
	"github.com/sitedesk/sitedesk/internal/domain/catalog"
	"github.com/sitedesk/sitedesk/internal/domain/complaint"
	vo "github.com/sitedesk/sitedesk/internal/domain/complaint/valueobjects"
	"github.com/sitedesk/sitedesk/internal/domain/notification"
	"github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
	"github.com/sitedesk/sitedesk/internal/shared/utils"
)

type TriageComplaintCommand struct {
	Actor          user.Actor
	ComplaintID    uint
	Scope          string `validate:"required"`
	Priority       string `validate:"required"`
	ResolutionType *string
	// RequiresVisit leaves the visit flag untouched when nil.
	RequiresVisit *bool
	VisitReason   *string
	Note          string `validate:"max=1000"`
}

type TriageComplaintUseCase struct {
	complaintRepo complaint.Repository
	guidanceRepo  catalog.GuidanceTemplateRepository
	txManager     TransactionRunner
	recorder      *transitionRecorder
	logger        logger.Interface
}

func NewTriageComplaintUseCase(
	complaintRepo complaint.Repository,
	guidanceRepo catalog.GuidanceTemplateRepository,
	historyRepo complaint.HistoryRepository,
	txManager TransactionRunner,
	publisher notification.Publisher,
	observer TransitionObserver,
	logger logger.Interface,
) *TriageComplaintUseCase {
	return &TriageComplaintUseCase{
		complaintRepo: complaintRepo,
		guidanceRepo:  guidanceRepo,
		txManager:     txManager,
		recorder:      newTransitionRecorder(historyRepo, publisher, observer),
		logger:        logger,
	}
}

func (uc *TriageComplaintUseCase) Execute(ctx context.Context, cmd TriageComplaintCommand) (*dto.ComplaintDTO, error) {
	uc.logger.Infow("executing triage complaint use case",
		"complaint_id", cmd.ComplaintID,
		"scope", cmd.Scope,
		"priority", cmd.Priority,
		"triaged_by", cmd.Actor.UserID)

	if err := requireStaff(cmd.Actor); err != nil {
		uc.logger.Warnw("non-staff triage attempt", "user_id", cmd.Actor.UserID)
		return nil, err
	}

	params, err := uc.buildParams(cmd)
	if err != nil {
		uc.logger.Errorw("invalid triage complaint command", "error", err)
		return nil, err
	}

	var (
		result *complaint.Complaint
		tr     complaint.Transition
	)
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		c, err := loadVisible(txCtx, uc.complaintRepo, cmd.Actor, cmd.ComplaintID, true)
		if err != nil {
			return err
		}

		expected := c.Version()
		tr, err = c.Triage(params)
		if err != nil {
			return domainError(err)
		}
		if err := uc.complaintRepo.Update(txCtx, c, expected); err != nil {
			return err
		}
		if err := uc.recorder.record(txCtx, c, tr, cmd.Actor.UserID, cmd.Note); err != nil {
			return err
		}

		if c.Status() == vo.StatusGuidanceSent {
			guidance := guidanceData(txCtx, uc.guidanceRepo, uc.logger, c.CategoryID())
			if err := uc.recorder.publish(txCtx, notification.EventGuidanceSent, c, reporterRecipient(c), guidance); err != nil {
				return err
			}
		} else if err := uc.recorder.publish(txCtx, notification.EventComplaintTriaged, c, reporterRecipient(c), nil); err != nil {
			return err
		}

		result = c
		return nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			uc.logger.Warnw("triage refused", "error", err, "complaint_id", cmd.ComplaintID)
		} else {
			uc.logger.Errorw("failed to triage complaint", "error", err, "complaint_id", cmd.ComplaintID)
		}
		return nil, storageError(err, "failed to triage complaint")
	}
	uc.recorder.observe(tr)

	uc.logger.Infow("complaint triaged",
		"complaint_id", result.ID(),
		"status", result.Status().String(),
		"scope", result.Scope().String())

	return dto.ToComplaintDTO(result), nil
}

func (uc *TriageComplaintUseCase) buildParams(cmd TriageComplaintCommand) (complaint.TriageParams, error) {
	if cmd.ComplaintID == 0 {
		return complaint.TriageParams{}, errors.NewValidationError("complaint ID is required")
	}
	if err := utils.ValidateStruct(cmd); err != nil {
		return complaint.TriageParams{}, err
	}

	scope, err := vo.NewScope(cmd.Scope)
	if err != nil {
		return complaint.TriageParams{}, errors.NewValidationError(err.Error())
	}
	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return complaint.TriageParams{}, errors.NewValidationError(err.Error())
	}

	params := complaint.TriageParams{
		Scope:         scope,
		Priority:      priority,
		RequiresVisit: cmd.RequiresVisit,
	}
	if cmd.ResolutionType != nil && *cmd.ResolutionType != "" {
		rt, err := vo.NewResolutionType(*cmd.ResolutionType)
		if err != nil {
			return complaint.TriageParams{}, errors.NewValidationError(err.Error())
		}
		params.ResolutionType = &rt
	}
	if params.VisitReason, err = parseOptionalVisitReason(cmd.VisitReason); err != nil {
		return complaint.TriageParams{}, err
	}
	return params, nil
}
