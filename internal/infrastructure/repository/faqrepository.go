package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sitedesk/sitedesk/internal/domain/catalog"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/mappers"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/models"
	"github.com/sitedesk/sitedesk/internal/shared/db"
)

type FAQRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
}

func NewFAQRepository(database *gorm.DB) catalog.FAQRepository {
	return &FAQRepositoryImpl{
		db:     database,
		mapper: mappers.NewCatalogMapper(),
	}
}

func (r *FAQRepositoryImpl) Create(ctx context.Context, f *catalog.FAQ) error {
	model := r.mapper.FAQToModel(f)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return translateWriteError(err, "create faq")
	}
	f.SetID(model.ID)
	return nil
}

func (r *FAQRepositoryImpl) Update(ctx context.Context, f *catalog.FAQ) error {
	model := r.mapper.FAQToModel(f)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.FAQModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"question":      model.Question,
			"answer":        model.Answer,
			"display_order": model.DisplayOrder,
			"is_active":     model.IsActive,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		return translateWriteError(result.Error, "update faq")
	}
	return nil
}

func (r *FAQRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.FAQ, error) {
	var model models.FAQModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get faq: %w", err)
	}
	return r.mapper.FAQToDomain(&model), nil
}

func (r *FAQRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]*catalog.FAQ, error) {
	query := db.GetTxFromContext(ctx, r.db)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var rows []models.FAQModel
	if err := query.Order("display_order ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}

	result := make([]*catalog.FAQ, 0, len(rows))
	for i := range rows {
		result = append(result, r.mapper.FAQToDomain(&rows[i]))
	}
	return result, nil
}
