package models

import "github.com/sitedesk/sitedesk/internal/shared/constants"

// UserModel is the resident/staff profile. Email is nullable so that
// profiles without one do not collide on the unique index.
type UserModel struct {
	ID          uint    `gorm:"primaryKey"`
	Role        string  `gorm:"size:20;not null"`
	DisplayName string  `gorm:"size:100;not null"`
	Email       *string `gorm:"size:255;uniqueIndex"`
	Phone       *string `gorm:"size:32"`
	SiteCode    *string `gorm:"size:50"`
	SiteName    string  `gorm:"size:100;not null"`
	UnitLabel   string  `gorm:"size:50;not null"`
	IsActive    bool    `gorm:"not null"`
	CreatedAt   int64   `gorm:"not null"`
	UpdatedAt   int64   `gorm:"not null"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
