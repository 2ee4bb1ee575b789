package models

import "github.com/sitedesk/sitedesk/internal/shared/constants"

type CategoryModel struct {
	ID           uint   `gorm:"primaryKey"`
	Code         string `gorm:"size:50;uniqueIndex;not null"`
	Name         string `gorm:"size:100;not null"`
	AllowedScope string `gorm:"size:20;not null"`
	IsActive     bool   `gorm:"not null"`
	DisplayOrder int    `gorm:"not null;default:0"`
	CreatedAt    int64  `gorm:"not null"`
	UpdatedAt    int64  `gorm:"not null"`
}

func (CategoryModel) TableName() string {
	return constants.TableComplaintCategories
}

type GuidanceTemplateModel struct {
	ID         uint   `gorm:"primaryKey"`
	CategoryID uint   `gorm:"uniqueIndex;not null"`
	Title      string `gorm:"size:200;not null"`
	Body       string `gorm:"type:text;not null"`
	IsActive   bool   `gorm:"not null"`
	CreatedAt  int64  `gorm:"not null"`
	UpdatedAt  int64  `gorm:"not null"`
}

func (GuidanceTemplateModel) TableName() string {
	return constants.TableGuidanceTemplates
}

type NoticeModel struct {
	ID          uint    `gorm:"primaryKey"`
	SiteCode    *string `gorm:"size:50"`
	Title       string  `gorm:"size:200;not null"`
	Body        string  `gorm:"type:text;not null"`
	IsPinned    bool    `gorm:"not null;default:false"`
	Status      string  `gorm:"size:10;not null"`
	PublishedAt *int64
	CreatedBy   uint  `gorm:"not null"`
	CreatedAt   int64 `gorm:"not null"`
	UpdatedAt   int64 `gorm:"not null"`
}

func (NoticeModel) TableName() string {
	return constants.TableNotices
}

type FAQModel struct {
	ID           uint   `gorm:"primaryKey"`
	Question     string `gorm:"size:500;not null"`
	Answer       string `gorm:"type:text;not null"`
	DisplayOrder int    `gorm:"not null;default:0"`
	IsActive     bool   `gorm:"not null"`
	CreatedAt    int64  `gorm:"not null"`
	UpdatedAt    int64  `gorm:"not null"`
}

func (FAQModel) TableName() string {
	return constants.TableFAQs
}
