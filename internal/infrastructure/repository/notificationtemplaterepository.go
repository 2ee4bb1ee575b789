package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sitedesk/sitedesk/internal/domain/notification"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/mappers"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/models"
	"github.com/sitedesk/sitedesk/internal/shared/db"
)

type NotificationTemplateRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.NotificationTemplateMapper
}

func NewNotificationTemplateRepository(database *gorm.DB) notification.TemplateRepository {
	return &NotificationTemplateRepositoryImpl{
		db:     database,
		mapper: mappers.NewNotificationTemplateMapper(),
	}
}

func (r *NotificationTemplateRepositoryImpl) Upsert(ctx context.Context, t *notification.Template) error {
	model := r.mapper.ToModel(t)
	model.ID = 0
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_key"}, {Name: "channel"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "body", "enabled", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return translateWriteError(err, "upsert notification template")
	}

	var stored models.NotificationTemplateModel
	if err := tx.Where("event_key = ? AND channel = ?", model.EventKey, model.Channel).First(&stored).Error; err != nil {
		return fmt.Errorf("failed to reload notification template: %w", err)
	}
	t.SetID(stored.ID)
	return nil
}

func (r *NotificationTemplateRepositoryImpl) Get(ctx context.Context, eventKey notification.EventKey, channel string) (*notification.Template, error) {
	var model models.NotificationTemplateModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("event_key = ? AND channel = ?", eventKey.String(), channel).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get notification template: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *NotificationTemplateRepositoryImpl) List(ctx context.Context) ([]*notification.Template, error) {
	var rows []models.NotificationTemplateModel
	if err := db.GetTxFromContext(ctx, r.db).
		Order("event_key ASC").Order("channel ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list notification templates: %w", err)
	}

	result := make([]*notification.Template, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.ToEntity(&rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, nil
}
