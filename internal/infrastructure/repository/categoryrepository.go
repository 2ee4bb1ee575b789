package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sitedesk/sitedesk/internal/domain/catalog"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/mappers"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/models"
	"github.com/sitedesk/sitedesk/internal/shared/db"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
)

type CategoryRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
}

func NewCategoryRepository(database *gorm.DB) catalog.CategoryRepository {
	return &CategoryRepositoryImpl{
		db:     database,
		mapper: mappers.NewCatalogMapper(),
	}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, c *catalog.Category) error {
	model := r.mapper.CategoryToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("category code already exists", c.Code())
		}
		return translateWriteError(err, "create category")
	}
	c.SetID(model.ID)
	return nil
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, c *catalog.Category) error {
	model := r.mapper.CategoryToModel(c)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.CategoryModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"allowed_scope": model.AllowedScope,
			"is_active":     model.IsActive,
			"display_order": model.DisplayOrder,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		return translateWriteError(result.Error, "update category")
	}
	return nil
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Category, error) {
	var model models.CategoryModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return r.mapper.CategoryToDomain(&model)
}

func (r *CategoryRepositoryImpl) GetByCode(ctx context.Context, code string) (*catalog.Category, error) {
	var model models.CategoryModel
	if err := db.GetTxFromContext(ctx, r.db).Where("code = ?", code).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return r.mapper.CategoryToDomain(&model)
}

func (r *CategoryRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]*catalog.Category, error) {
	query := db.GetTxFromContext(ctx, r.db)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var rows []models.CategoryModel
	if err := query.Order("display_order ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	result := make([]*catalog.Category, 0, len(rows))
	for i := range rows {
		c, err := r.mapper.CategoryToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}
