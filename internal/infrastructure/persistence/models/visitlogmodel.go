package models

import "github.com/sitedesk/sitedesk/internal/shared/constants"

type VisitLogModel struct {
	ID            uint   `gorm:"primaryKey"`
	ComplaintID   uint   `gorm:"not null;index"`
	UnitLabel     string `gorm:"size:50;not null"`
	VisitorUserID uint   `gorm:"not null"`
	VisitReason   string `gorm:"size:30;not null"`
	CheckInAt     int64  `gorm:"not null"`
	CheckOutAt    *int64
	ResultNote    string `gorm:"size:2000;not null"`
}

func (VisitLogModel) TableName() string {
	return constants.TableVisitLogs
}
