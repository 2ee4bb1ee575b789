package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/application/complaint/dto"
	"github.com/sitedesk/sitedesk/internal/domain/catalog"
	"github.com/sitedesk/sitedesk/internal/domain/complaint"
	vo "github.com/sitedesk/sitedesk/internal/domain/complaint/valueobjects"
	"github.com/sitedesk/sitedesk/internal/domain/notification"
	"github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/shared/biztime"
	"github.com/sitedesk/sitedesk/internal/shared/config"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
	"github.com/sitedesk/sitedesk/internal/shared/utils"
)

type SubmitComplaintCommand struct {
	Actor          user.Actor
	CategoryID     uint
	Scope          string
	Priority       string
	Title          string
	Description    string
	LocationDetail string
	RequiresVisit  bool
	VisitReason    *string
	Attachments    []string
	// Emergency marks a submission made through the emergency path.
	Emergency bool
}

type SubmitComplaintUseCase struct {
	complaintRepo complaint.Repository
	categoryRepo  catalog.CategoryRepository
	guidanceRepo  catalog.GuidanceTemplateRepository
	sequence      complaint.SequenceAllocator
	txManager     TransactionRunner
	recorder      *transitionRecorder
	cfg           config.ComplaintConfig
	logger        logger.Interface
}

func NewSubmitComplaintUseCase(
	complaintRepo complaint.Repository,
	categoryRepo catalog.CategoryRepository,
	guidanceRepo catalog.GuidanceTemplateRepository,
	historyRepo complaint.HistoryRepository,
	sequence complaint.SequenceAllocator,
	txManager TransactionRunner,
	publisher notification.Publisher,
	observer TransitionObserver,
	cfg config.ComplaintConfig,
	logger logger.Interface,
) *SubmitComplaintUseCase {
	return &SubmitComplaintUseCase{
		complaintRepo: complaintRepo,
		categoryRepo:  categoryRepo,
		guidanceRepo:  guidanceRepo,
		sequence:      sequence,
		txManager:     txManager,
		recorder:      newTransitionRecorder(historyRepo, publisher, observer),
		cfg:           cfg,
		logger:        logger,
	}
}

func (uc *SubmitComplaintUseCase) Execute(ctx context.Context, cmd SubmitComplaintCommand) (*dto.ComplaintDTO, error) {
	uc.logger.Infow("executing submit complaint use case",
		"reporter_id", cmd.Actor.UserID,
		"site_code", cmd.Actor.SiteCode,
		"category_id", cmd.CategoryID,
		"emergency", cmd.Emergency)

	params, err := uc.buildParams(ctx, cmd)
	if err != nil {
		uc.logger.Warnw("complaint submission rejected", "error", err, "reporter_id", cmd.Actor.UserID)
		return nil, err
	}

	c, initial, err := complaint.NewComplaint(params)
	if err != nil {
		uc.logger.Warnw("invalid complaint submission", "error", err, "reporter_id", cmd.Actor.UserID)
		return nil, domainError(err)
	}

	var guidance map[string]interface{}
	if c.Status() == vo.StatusGuidanceSent {
		guidance = guidanceData(ctx, uc.guidanceRepo, uc.logger, c.CategoryID())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		seq, err := uc.sequence.Next(txCtx, biztime.DayKeyUTC(c.CreatedAt()))
		if err != nil {
			return err
		}
		ticketNo, err := complaint.FormatTicketNumber(c.CreatedAt(), seq)
		if err != nil {
			return err
		}
		if err := c.SetTicketNo(ticketNo); err != nil {
			return err
		}

		if err := uc.complaintRepo.Create(txCtx, c); err != nil {
			return err
		}
		if err := uc.recorder.record(txCtx, c, initial, cmd.Actor.UserID, ""); err != nil {
			return err
		}
		if err := uc.recorder.publish(txCtx, notification.EventComplaintNew, c,
			[]string{notification.SiteRecipient(c.SiteCode())}, nil); err != nil {
			return err
		}
		if c.Status() == vo.StatusGuidanceSent {
			return uc.recorder.publish(txCtx, notification.EventGuidanceSent, c, reporterRecipient(c), guidance)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to submit complaint", "error", err, "reporter_id", cmd.Actor.UserID)
		return nil, storageError(err, "failed to submit complaint")
	}
	uc.recorder.observe(initial)

	uc.logger.Infow("complaint submitted",
		"complaint_id", c.ID(),
		"ticket_no", c.TicketNo(),
		"scope", c.Scope().String(),
		"status", c.Status().String())

	return dto.ToComplaintDTO(c), nil
}

func (uc *SubmitComplaintUseCase) buildParams(ctx context.Context, cmd SubmitComplaintCommand) (complaint.SubmitParams, error) {
	if cmd.Actor.UserID == 0 || cmd.Actor.SiteCode == "" {
		return complaint.SubmitParams{}, errors.NewForbiddenError("a site profile is required to submit complaints")
	}
	if cmd.CategoryID == 0 {
		return complaint.SubmitParams{}, errors.NewValidationError("category is required")
	}

	category, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID)
	if err != nil {
		return complaint.SubmitParams{}, storageError(err, "failed to load category")
	}
	if category == nil || !category.IsActive() {
		return complaint.SubmitParams{}, errors.NewValidationError("category does not exist or is inactive")
	}

	scope := category.AllowedScope()
	if cmd.Scope != "" {
		if scope, err = vo.NewScope(cmd.Scope); err != nil {
			return complaint.SubmitParams{}, errors.NewValidationError(err.Error())
		}
	}

	var priority vo.Priority
	if cmd.Priority != "" {
		if priority, err = vo.NewPriority(cmd.Priority); err != nil {
			return complaint.SubmitParams{}, errors.NewValidationError(err.Error())
		}
	}

	visitReason, err := parseOptionalVisitReason(cmd.VisitReason)
	if err != nil {
		return complaint.SubmitParams{}, err
	}

	attachments, err := vo.NewAttachments(cmd.Attachments, uc.cfg.MaxAttachments, uc.cfg.MaxAttachmentLength)
	if err != nil {
		return complaint.SubmitParams{}, errors.NewValidationError(err.Error())
	}

	return complaint.SubmitParams{
		CategoryID:     category.ID(),
		Scope:          scope,
		Priority:       priority,
		Title:          utils.NormalizeText(cmd.Title),
		Description:    utils.NormalizeText(cmd.Description),
		LocationDetail: utils.NormalizeText(cmd.LocationDetail),
		SiteCode:       cmd.Actor.SiteCode,
		SiteName:       cmd.Actor.SiteName,
		UnitLabel:      cmd.Actor.UnitLabel,
		ReporterUserID: cmd.Actor.UserID,
		RequiresVisit:  cmd.RequiresVisit,
		VisitReason:    visitReason,
		Attachments:    attachments,
		Emergency:      cmd.Emergency,
	}, nil
}
