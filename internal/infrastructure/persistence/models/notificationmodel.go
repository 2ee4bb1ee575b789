package models

import (
	"gorm.io/datatypes"

	"github.com/sitedesk/sitedesk/internal/shared/constants"
)

// NotificationQueueModel is one outbox row. ClaimedAt is the lease taken by
// a delivery worker.
type NotificationQueueModel struct {
	ID          uint              `gorm:"primaryKey"`
	EventID     string            `gorm:"size:36;uniqueIndex;not null"`
	EventKey    string            `gorm:"size:40;not null"`
	ComplaintID *uint             `gorm:"index"`
	Channel     string            `gorm:"size:20;not null"`
	Recipient   string            `gorm:"size:100;not null"`
	Subject     string            `gorm:"size:200;not null"`
	Payload     string            `gorm:"type:text;not null"`
	Data        datatypes.JSONMap `gorm:"type:json"`
	Status      string            `gorm:"size:10;not null"`
	Attempts    int               `gorm:"not null;default:0"`
	CreatedAt   int64             `gorm:"not null"`
	ClaimedAt   *int64
	SentAt      *int64
	Error       *string `gorm:"size:1000"`
}

func (NotificationQueueModel) TableName() string {
	return constants.TableNotificationQueue
}
