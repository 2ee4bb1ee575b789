package models

import "github.com/sitedesk/sitedesk/internal/shared/constants"

// StatusHistoryModel rows are never updated or deleted; the migrations add
// triggers that reject both.
type StatusHistoryModel struct {
	ID          uint    `gorm:"primaryKey"`
	ComplaintID uint    `gorm:"not null;index"`
	FromStatus  *string `gorm:"size:20"`
	ToStatus    string  `gorm:"size:20;not null"`
	ChangedBy   uint    `gorm:"not null"`
	Note        string  `gorm:"size:1000;not null"`
	CreatedAt   int64   `gorm:"not null"`
}

func (StatusHistoryModel) TableName() string {
	return constants.TableStatusHistory
}
