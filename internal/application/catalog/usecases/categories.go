package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/application/catalog/dto"
	"github.com/sitedesk/sitedesk/internal/domain/catalog"
	vo "github.com/sitedesk/sitedesk/internal/domain/complaint/valueobjects"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
	"github.com/sitedesk/sitedesk/internal/shared/utils"
)

type CreateCategoryUseCase struct {
	repo   catalog.CategoryRepository
	logger logger.Interface
}

func NewCreateCategoryUseCase(repo catalog.CategoryRepository, logger logger.Interface) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{repo: repo, logger: logger}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryDTO, error) {
	code := utils.NormalizeCode(req.Code)
	uc.logger.Infow("executing create category use case", "code", code)

	scope, err := vo.NewScope(req.AllowedScope)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		uc.logger.Errorw("failed to check category code", "code", code, "error", err)
		return nil, errors.NewInternalError("failed to create category")
	}
	if existing != nil {
		return nil, errors.NewConflictError("category code already exists", code)
	}

	category, err := catalog.NewCategory(code, utils.TitleCase(req.Name), scope, req.DisplayOrder)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		uc.logger.Errorw("failed to persist category", "code", code, "error", err)
		return nil, storageError(err, "failed to create category")
	}

	uc.logger.Infow("category created", "id", category.ID(), "code", code)
	return dto.ToCategoryDTO(category), nil
}

type UpdateCategoryUseCase struct {
	repo   catalog.CategoryRepository
	logger logger.Interface
}

func NewUpdateCategoryUseCase(repo catalog.CategoryRepository, logger logger.Interface) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{repo: repo, logger: logger}
}

// Execute applies a partial update. The code is immutable.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, id uint, req dto.UpdateCategoryRequest) (*dto.CategoryDTO, error) {
	uc.logger.Infow("executing update category use case", "id", id)

	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to load category", "id", id, "error", err)
		return nil, errors.NewInternalError("failed to update category")
	}
	if category == nil {
		return nil, errors.NewNotFoundError("category not found")
	}

	name := category.Name()
	if req.Name != nil {
		name = utils.TitleCase(*req.Name)
	}
	scope := category.AllowedScope()
	if req.AllowedScope != nil {
		if scope, err = vo.NewScope(*req.AllowedScope); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	order := category.DisplayOrder()
	if req.DisplayOrder != nil {
		order = *req.DisplayOrder
	}
	if err := category.Update(name, scope, order); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if req.IsActive != nil {
		if *req.IsActive {
			category.Activate()
		} else {
			category.Deactivate()
		}
	}

	if err := uc.repo.Update(ctx, category); err != nil {
		uc.logger.Errorw("failed to update category", "id", id, "error", err)
		return nil, storageError(err, "failed to update category")
	}

	uc.logger.Infow("category updated", "id", id, "active", category.IsActive())
	return dto.ToCategoryDTO(category), nil
}

type ListCategoriesUseCase struct {
	repo   catalog.CategoryRepository
	logger logger.Interface
}

func NewListCategoriesUseCase(repo catalog.CategoryRepository, logger logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{repo: repo, logger: logger}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context, activeOnly bool) ([]*dto.CategoryDTO, error) {
	categories, err := uc.repo.List(ctx, activeOnly)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, errors.NewInternalError("failed to list categories")
	}
	return dto.ToCategoryDTOList(categories), nil
}

func storageError(err error, msg string) error {
	if errors.IsAppError(err) {
		return err
	}
	return errors.NewInternalError(msg)
}
