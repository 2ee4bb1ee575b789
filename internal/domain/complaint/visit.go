package complaint

import (
	"fmt"
	"time"

	vo "github.com/sitedesk/sitedesk/internal/domain/complaint/valueobjects"
	"github.com/sitedesk/sitedesk/internal/shared/biztime"
)

// VisitLog records a physical entry into a unit. The unit label is a
// snapshot of the complaint at check-in time.
type VisitLog struct {
	id            uint
	complaintID   uint
	unitLabel     string
	visitorUserID uint
	visitReason   vo.VisitReason
	checkInAt     time.Time
	checkOutAt    *time.Time
	resultNote    string
}

func NewVisitLog(c *Complaint, visitorUserID uint, reason vo.VisitReason, note string) (*VisitLog, error) {
	if c == nil || c.ID() == 0 {
		return nil, fmt.Errorf("complaint is required")
	}
	if visitorUserID == 0 {
		return nil, fmt.Errorf("visitor is required")
	}
	if !reason.IsValid() {
		return nil, fmt.Errorf("invalid visit reason: %s", reason)
	}
	if len([]rune(note)) > MaxResultNoteLength {
		return nil, fmt.Errorf("note exceeds maximum length of %d characters", MaxResultNoteLength)
	}

	return &VisitLog{
		complaintID:   c.ID(),
		unitLabel:     c.UnitLabel(),
		visitorUserID: visitorUserID,
		visitReason:   reason,
		checkInAt:     biztime.NowUTC(),
		resultNote:    note,
	}, nil
}

func ReconstructVisitLog(
	id, complaintID uint,
	unitLabel string,
	visitorUserID uint,
	reason vo.VisitReason,
	checkInAt time.Time,
	checkOutAt *time.Time,
	resultNote string,
) (*VisitLog, error) {
	if id == 0 {
		return nil, fmt.Errorf("visit ID cannot be zero")
	}
	if !reason.IsValid() {
		return nil, fmt.Errorf("invalid visit reason: %s", reason)
	}
	return &VisitLog{
		id:            id,
		complaintID:   complaintID,
		unitLabel:     unitLabel,
		visitorUserID: visitorUserID,
		visitReason:   reason,
		checkInAt:     checkInAt,
		checkOutAt:    checkOutAt,
		resultNote:    resultNote,
	}, nil
}

func (v *VisitLog) ID() uint { return v.id }
func (v *VisitLog) ComplaintID() uint { return v.complaintID }
func (v *VisitLog) UnitLabel() string { return v.unitLabel }
func (v *VisitLog) VisitorUserID() uint { return v.visitorUserID }
func (v *VisitLog) VisitReason() vo.VisitReason { return v.visitReason }
func (v *VisitLog) CheckInAt() time.Time { return v.checkInAt }
func (v *VisitLog) CheckOutAt() *time.Time { return v.checkOutAt }
func (v *VisitLog) ResultNote() string { return v.resultNote }
func (v *VisitLog) IsCheckedOut() bool { return v.checkOutAt != nil }

func (v *VisitLog) SetID(id uint) error {
	if v.id != 0 {
		return fmt.Errorf("visit ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("visit ID cannot be zero")
	}
	v.id = id
	return nil
}

// Checkout stamps check_out_at once. Later calls leave the visit unchanged
// and report false.
func (v *VisitLog) Checkout(note *string) (bool, error) {
	if v.IsCheckedOut() {
		return false, nil
	}
	if note != nil && len([]rune(*note)) > MaxResultNoteLength {
		return false, fmt.Errorf("note exceeds maximum length of %d characters", MaxResultNoteLength)
	}

	now := biztime.NowUTC()
	if now.Before(v.checkInAt) {
		now = v.checkInAt
	}
	v.checkOutAt = &now
	if note != nil {
		v.resultNote = *note
	}
	return true, nil
}
