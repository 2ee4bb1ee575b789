package models

import "github.com/sitedesk/sitedesk/internal/shared/constants"

type NotificationTemplateModel struct {
	ID        uint   `gorm:"primaryKey"`
	EventKey  string `gorm:"size:40;not null;uniqueIndex:uk_notification_templates_key_channel"`
	Channel   string `gorm:"size:20;not null;uniqueIndex:uk_notification_templates_key_channel"`
	Title     string `gorm:"size:200;not null"`
	Body      string `gorm:"type:text;not null"`
	Enabled   bool   `gorm:"not null"`
	CreatedAt int64  `gorm:"not null"`
	UpdatedAt int64  `gorm:"not null"`
}

func (NotificationTemplateModel) TableName() string {
	return constants.TableNotificationTemplates
}
