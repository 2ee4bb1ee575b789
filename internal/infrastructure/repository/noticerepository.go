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

type NoticeRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
}

func NewNoticeRepository(database *gorm.DB) catalog.NoticeRepository {
	return &NoticeRepositoryImpl{
		db:     database,
		mapper: mappers.NewCatalogMapper(),
	}
}

func (r *NoticeRepositoryImpl) Create(ctx context.Context, n *catalog.Notice) error {
	model := r.mapper.NoticeToModel(n)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return translateWriteError(err, "create notice")
	}
	n.SetID(model.ID)
	return nil
}

func (r *NoticeRepositoryImpl) Update(ctx context.Context, n *catalog.Notice) error {
	model := r.mapper.NoticeToModel(n)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.NoticeModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"site_code":    model.SiteCode,
			"title":        model.Title,
			"body":         model.Body,
			"is_pinned":    model.IsPinned,
			"status":       model.Status,
			"published_at": model.PublishedAt,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		return translateWriteError(result.Error, "update notice")
	}
	return nil
}

func (r *NoticeRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Notice, error) {
	var model models.NoticeModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get notice: %w", err)
	}
	return r.mapper.NoticeToDomain(&model)
}

func (r *NoticeRepositoryImpl) ListPublished(ctx context.Context, siteCode string, page, pageSize int) ([]*catalog.Notice, int64, error) {
	query := r.siteScoped(ctx, siteCode).Where("status = ?", catalog.NoticeStatusPublished.String())
	return r.page(query.Order("is_pinned DESC").Order("published_at DESC").Order("id DESC"), page, pageSize)
}

func (r *NoticeRepositoryImpl) ListAll(ctx context.Context, siteCode string, page, pageSize int) ([]*catalog.Notice, int64, error) {
	return r.page(r.siteScoped(ctx, siteCode).Order("id DESC"), page, pageSize)
}

// siteScoped matches the site's notices plus global ones (site_code NULL).
func (r *NoticeRepositoryImpl) siteScoped(ctx context.Context, siteCode string) *gorm.DB {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.NoticeModel{})
	if siteCode != "" {
		query = query.Where("site_code = ? OR site_code IS NULL", siteCode)
	}
	return query
}

func (r *NoticeRepositoryImpl) page(query *gorm.DB, page, pageSize int) ([]*catalog.Notice, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notices: %w", err)
	}
	if pageSize > 0 {
		if page < 1 {
			page = 1
		}
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	var rows []models.NoticeModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list notices: %w", err)
	}

	result := make([]*catalog.Notice, 0, len(rows))
	for i := range rows {
		n, err := r.mapper.NoticeToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		result = append(result, n)
	}
	return result, total, nil
}
