package models

import (
	"gorm.io/datatypes"

	"github.com/sitedesk/sitedesk/internal/shared/constants"
)

// ComplaintModel maps the complaints table. Timestamps are Unix milliseconds
// in UTC. The scope, status and visit invariants are also enforced by CHECK
// constraints in the migrations.
type ComplaintModel struct {
	ID               uint                        `gorm:"primaryKey"`
	TicketNo         string                      `gorm:"size:16;uniqueIndex;not null"`
	CategoryID       uint                        `gorm:"not null"`
	Scope            string                      `gorm:"size:20;not null"`
	Status           string                      `gorm:"size:20;not null"`
	Priority         string                      `gorm:"size:10;not null"`
	ResolutionType   *string                     `gorm:"size:20"`
	Title            string                      `gorm:"size:200;not null"`
	Description      string                      `gorm:"type:text;not null"`
	LocationDetail   string                      `gorm:"size:200;not null"`
	SiteCode         string                      `gorm:"size:50;not null"`
	SiteName         string                      `gorm:"size:100;not null"`
	UnitLabel        string                      `gorm:"size:50;not null"`
	ReporterUserID   uint                        `gorm:"not null"`
	AssignedToUserID *uint
	RequiresVisit    bool                        `gorm:"not null"`
	VisitReason      *string                     `gorm:"size:30"`
	Attachments      datatypes.JSONSlice[string] `gorm:"type:json"`
	Version          int                         `gorm:"not null;default:1"`
	CreatedAt        int64                       `gorm:"not null"`
	TriagedAt        *int64
	ClosedAt         *int64
	UpdatedAt        int64 `gorm:"not null"`
}

func (ComplaintModel) TableName() string {
	return constants.TableComplaints
}

// DailySequenceModel is the per-UTC-day ticket counter.
type DailySequenceModel struct {
	SeqDate   string `gorm:"primaryKey;size:8"`
	LastValue int64  `gorm:"not null"`
}

func (DailySequenceModel) TableName() string {
	return constants.TableDailySequences
}
