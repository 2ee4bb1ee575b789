package mappers

import (
	"github.com/sitedesk/sitedesk/internal/domain/notification"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/models"
	"github.com/sitedesk/sitedesk/internal/shared/biztime"
)

type NotificationTemplateMapper interface {
	ToModel(t *notification.Template) *models.NotificationTemplateModel
	ToEntity(model *models.NotificationTemplateModel) (*notification.Template, error)
}

type NotificationTemplateMapperImpl struct{}

func NewNotificationTemplateMapper() NotificationTemplateMapper {
	return &NotificationTemplateMapperImpl{}
}

func (m *NotificationTemplateMapperImpl) ToModel(t *notification.Template) *models.NotificationTemplateModel {
	return &models.NotificationTemplateModel{
		ID:        t.ID(),
		EventKey:  t.EventKey().String(),
		Channel:   t.Channel(),
		Title:     t.Title(),
		Body:      t.Body(),
		Enabled:   t.Enabled(),
		CreatedAt: biztime.ToMillis(t.CreatedAt()),
		UpdatedAt: biztime.ToMillis(t.UpdatedAt()),
	}
}

func (m *NotificationTemplateMapperImpl) ToEntity(model *models.NotificationTemplateModel) (*notification.Template, error) {
	return notification.ReconstructTemplate(
		model.ID,
		notification.EventKey(model.EventKey),
		model.Channel,
		model.Title,
		model.Body,
		model.Enabled,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}
