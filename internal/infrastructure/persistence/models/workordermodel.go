package models

import "github.com/sitedesk/sitedesk/internal/shared/constants"

type WorkOrderModel struct {
	ID             uint   `gorm:"primaryKey"`
	ComplaintID    uint   `gorm:"not null;index"`
	AssigneeUserID uint   `gorm:"not null"`
	Status         string `gorm:"size:20;not null"`
	ScheduledAt    *int64
	CompletedAt    *int64
	ResultNote     string `gorm:"size:2000;not null"`
	CreatedAt      int64  `gorm:"not null"`
	UpdatedAt      int64  `gorm:"not null"`
}

func (WorkOrderModel) TableName() string {
	return constants.TableWorkOrders
}
