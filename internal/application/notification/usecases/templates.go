package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/application/notification/dto"
	"github.com/sitedesk/sitedesk/internal/domain/notification"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

type UpsertTemplateUseCase struct {
	repo   notification.TemplateRepository
	logger logger.Interface
}

func NewUpsertTemplateUseCase(repo notification.TemplateRepository, logger logger.Interface) *UpsertTemplateUseCase {
	return &UpsertTemplateUseCase{repo: repo, logger: logger}
}

// Execute creates or replaces the template for an event key and channel.
func (uc *UpsertTemplateUseCase) Execute(ctx context.Context, req dto.UpsertTemplateRequest) (*dto.TemplateDTO, error) {
	uc.logger.Infow("executing upsert template use case", "event_key", req.EventKey, "channel", req.Channel)

	key, err := notification.NewEventKey(req.EventKey)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	tmpl, err := notification.NewTemplate(key, req.Channel, req.Title, req.Body)
	if err != nil {
		uc.logger.Errorw("invalid notification template", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}
	if req.Enabled != nil && !*req.Enabled {
		tmpl.Disable()
	}
	if err := uc.repo.Upsert(ctx, tmpl); err != nil {
		uc.logger.Errorw("failed to persist notification template", "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to save template")
	}

	uc.logger.Infow("notification template saved", "id", tmpl.ID(), "event_key", key)
	return dto.ToTemplateDTO(tmpl), nil
}

type ListTemplatesUseCase struct {
	repo   notification.TemplateRepository
	logger logger.Interface
}

func NewListTemplatesUseCase(repo notification.TemplateRepository, logger logger.Interface) *ListTemplatesUseCase {
	return &ListTemplatesUseCase{repo: repo, logger: logger}
}

func (uc *ListTemplatesUseCase) Execute(ctx context.Context) ([]*dto.TemplateDTO, error) {
	templates, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list notification templates", "error", err)
		return nil, errors.NewInternalError("failed to list templates")
	}
	return dto.ToTemplateDTOList(templates), nil
}
