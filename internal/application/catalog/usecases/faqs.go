package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/application/catalog/dto"
	"github.com/sitedesk/sitedesk/internal/domain/catalog"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
	"github.com/sitedesk/sitedesk/internal/shared/utils"
)

type CreateFAQUseCase struct {
	repo   catalog.FAQRepository
	logger logger.Interface
}

func NewCreateFAQUseCase(repo catalog.FAQRepository, logger logger.Interface) *CreateFAQUseCase {
	return &CreateFAQUseCase{repo: repo, logger: logger}
}

func (uc *CreateFAQUseCase) Execute(ctx context.Context, req dto.CreateFAQRequest) (*dto.FAQDTO, error) {
	faq, err := catalog.NewFAQ(utils.NormalizeText(req.Question), utils.NormalizeText(req.Answer), req.DisplayOrder)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.repo.Create(ctx, faq); err != nil {
		uc.logger.Errorw("failed to persist faq", "error", err)
		return nil, storageError(err, "failed to create faq")
	}
	uc.logger.Infow("faq created", "id", faq.ID())
	return dto.ToFAQDTO(faq), nil
}

type UpdateFAQUseCase struct {
	repo   catalog.FAQRepository
	logger logger.Interface
}

func NewUpdateFAQUseCase(repo catalog.FAQRepository, logger logger.Interface) *UpdateFAQUseCase {
	return &UpdateFAQUseCase{repo: repo, logger: logger}
}

func (uc *UpdateFAQUseCase) Execute(ctx context.Context, id uint, req dto.UpdateFAQRequest) (*dto.FAQDTO, error) {
	faq, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to load faq", "id", id, "error", err)
		return nil, errors.NewInternalError("failed to update faq")
	}
	if faq == nil {
		return nil, errors.NewNotFoundError("faq not found")
	}

	question, answer, order := faq.Question(), faq.Answer(), faq.DisplayOrder()
	if req.Question != nil {
		question = utils.NormalizeText(*req.Question)
	}
	if req.Answer != nil {
		answer = utils.NormalizeText(*req.Answer)
	}
	if req.DisplayOrder != nil {
		order = *req.DisplayOrder
	}
	if err := faq.Update(question, answer, order); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if req.IsActive != nil {
		faq.SetActive(*req.IsActive)
	}

	if err := uc.repo.Update(ctx, faq); err != nil {
		uc.logger.Errorw("failed to update faq", "id", id, "error", err)
		return nil, storageError(err, "failed to update faq")
	}
	return dto.ToFAQDTO(faq), nil
}

type ListFAQsUseCase struct {
	repo   catalog.FAQRepository
	logger logger.Interface
}

func NewListFAQsUseCase(repo catalog.FAQRepository, logger logger.Interface) *ListFAQsUseCase {
	return &ListFAQsUseCase{repo: repo, logger: logger}
}

func (uc *ListFAQsUseCase) Execute(ctx context.Context, activeOnly bool) ([]*dto.FAQDTO, error) {
	faqs, err := uc.repo.List(ctx, activeOnly)
	if err != nil {
		uc.logger.Errorw("failed to list faqs", "error", err)
		return nil, errors.NewInternalError("failed to list faqs")
	}
	return dto.ToFAQDTOList(faqs), nil
}
