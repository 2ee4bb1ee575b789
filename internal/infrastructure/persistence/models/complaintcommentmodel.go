package models

import "github.com/sitedesk/sitedesk/internal/shared/constants"

type ComplaintCommentModel struct {
	ID          uint   `gorm:"primaryKey"`
	ComplaintID uint   `gorm:"not null;index"`
	UserID      uint   `gorm:"not null"`
	Comment     string `gorm:"type:text;not null"`
	IsInternal  bool   `gorm:"not null;default:false"`
	CreatedAt   int64  `gorm:"not null"`
}

func (ComplaintCommentModel) TableName() string {
	return constants.TableComplaintComments
}
