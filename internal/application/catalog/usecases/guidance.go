package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/application/catalog/dto"
	"github.com/sitedesk/sitedesk/internal/domain/catalog"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
	"github.com/sitedesk/sitedesk/internal/shared/utils"
)

// UpsertGuidanceUseCase sets the self-help text of a category. Each category
// has at most one guidance template.
type UpsertGuidanceUseCase struct {
	categoryRepo catalog.CategoryRepository
	guidanceRepo catalog.GuidanceTemplateRepository
	logger       logger.Interface
}

func NewUpsertGuidanceUseCase(
	categoryRepo catalog.CategoryRepository,
	guidanceRepo catalog.GuidanceTemplateRepository,
	logger logger.Interface,
) *UpsertGuidanceUseCase {
	return &UpsertGuidanceUseCase{categoryRepo: categoryRepo, guidanceRepo: guidanceRepo, logger: logger}
}

func (uc *UpsertGuidanceUseCase) Execute(ctx context.Context, categoryID uint, req dto.UpsertGuidanceRequest) (*dto.GuidanceTemplateDTO, error) {
	uc.logger.Infow("executing upsert guidance use case", "category_id", categoryID)

	category, err := uc.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		uc.logger.Errorw("failed to load category", "category_id", categoryID, "error", err)
		return nil, errors.NewInternalError("failed to save guidance")
	}
	if category == nil {
		return nil, errors.NewNotFoundError("category not found")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	title := utils.NormalizeText(req.Title)
	body := utils.NormalizeText(req.Body)

	guidance, err := uc.guidanceRepo.GetByCategory(ctx, categoryID)
	if err != nil {
		uc.logger.Errorw("failed to load guidance", "category_id", categoryID, "error", err)
		return nil, errors.NewInternalError("failed to save guidance")
	}
	if guidance == nil {
		if guidance, err = catalog.NewGuidanceTemplate(categoryID, title, body); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if err := guidance.Update(title, body, isActive); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.guidanceRepo.Upsert(ctx, guidance); err != nil {
		uc.logger.Errorw("failed to persist guidance", "category_id", categoryID, "error", err)
		return nil, storageError(err, "failed to save guidance")
	}
	return dto.ToGuidanceTemplateDTO(guidance), nil
}

type GetGuidanceUseCase struct {
	guidanceRepo catalog.GuidanceTemplateRepository
	logger       logger.Interface
}

func NewGetGuidanceUseCase(guidanceRepo catalog.GuidanceTemplateRepository, logger logger.Interface) *GetGuidanceUseCase {
	return &GetGuidanceUseCase{guidanceRepo: guidanceRepo, logger: logger}
}

func (uc *GetGuidanceUseCase) Execute(ctx context.Context, categoryID uint) (*dto.GuidanceTemplateDTO, error) {
	guidance, err := uc.guidanceRepo.GetByCategory(ctx, categoryID)
	if err != nil {
		uc.logger.Errorw("failed to load guidance", "category_id", categoryID, "error", err)
		return nil, errors.NewInternalError("failed to load guidance")
	}
	if guidance == nil {
		return nil, errors.NewNotFoundError("guidance not found")
	}
	return dto.ToGuidanceTemplateDTO(guidance), nil
}
