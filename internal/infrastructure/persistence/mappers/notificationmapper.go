package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/sitedesk/sitedesk/internal/domain/notification"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/models"
	"github.com/sitedesk/sitedesk/internal/shared/biztime"
)

type NotificationMapper interface {
	ToModel(e *notification.QueueEntry) *models.NotificationQueueModel
	ToEntity(model *models.NotificationQueueModel) (*notification.QueueEntry, error)
	ToEntities(models []models.NotificationQueueModel) ([]*notification.QueueEntry, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToModel(e *notification.QueueEntry) *models.NotificationQueueModel {
	return &models.NotificationQueueModel{
		ID:          e.ID(),
		EventID:     e.EventID(),
		EventKey:    e.EventKey().String(),
		ComplaintID: e.ComplaintID(),
		Channel:     e.Channel(),
		Recipient:   e.Recipient(),
		Subject:     e.Subject(),
		Payload:     e.Payload(),
		Data:        datatypes.JSONMap(e.Data()),
		Status:      e.Status().String(),
		Attempts:    e.Attempts(),
		CreatedAt:   biztime.ToMillis(e.CreatedAt()),
		ClaimedAt:   biztime.ToMillisPtr(e.ClaimedAt()),
		SentAt:      biztime.ToMillisPtr(e.SentAt()),
		Error:       optionalString(e.LastError()),
	}
}

func (m *NotificationMapperImpl) ToEntity(model *models.NotificationQueueModel) (*notification.QueueEntry, error) {
	entry, err := notification.ReconstructQueueEntry(
		model.ID,
		model.EventID,
		notification.EventKey(model.EventKey),
		model.ComplaintID,
		model.Channel,
		model.Recipient,
		model.Subject,
		model.Payload,
		map[string]interface{}(model.Data),
		notification.Status(model.Status),
		model.Attempts,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillisPtr(model.ClaimedAt),
		biztime.FromMillisPtr(model.SentAt),
		derefString(model.Error),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct queue entry (id=%d): %w", model.ID, err)
	}
	return entry, nil
}

func (m *NotificationMapperImpl) ToEntities(rows []models.NotificationQueueModel) ([]*notification.QueueEntry, error) {
	entries := make([]*notification.QueueEntry, 0, len(rows))
	for i := range rows {
		entry, err := m.ToEntity(&rows[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
