package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sitedesk/sitedesk/internal/domain/catalog"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/mappers"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/models"
	"github.com/sitedesk/sitedesk/internal/shared/db"
)

type GuidanceTemplateRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
}

func NewGuidanceTemplateRepository(database *gorm.DB) catalog.GuidanceTemplateRepository {
	return &GuidanceTemplateRepositoryImpl{
		db:     database,
		mapper: mappers.NewCatalogMapper(),
	}
}

// Upsert keys on category_id; an existing template keeps its id and
// created_at.
func (r *GuidanceTemplateRepositoryImpl) Upsert(ctx context.Context, g *catalog.GuidanceTemplate) error {
	model := r.mapper.GuidanceToModel(g)
	model.ID = 0
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "body", "is_active", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return translateWriteError(err, "upsert guidance template")
	}

	var stored models.GuidanceTemplateModel
	if err := tx.Where("category_id = ?", g.CategoryID()).First(&stored).Error; err != nil {
		return fmt.Errorf("failed to reload guidance template: %w", err)
	}
	g.SetID(stored.ID)
	return nil
}

func (r *GuidanceTemplateRepositoryImpl) GetByCategory(ctx context.Context, categoryID uint) (*catalog.GuidanceTemplate, error) {
	var model models.GuidanceTemplateModel
	if err := db.GetTxFromContext(ctx, r.db).Where("category_id = ?", categoryID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get guidance template: %w", err)
	}
	return r.mapper.GuidanceToDomain(&model), nil
}
