package complaint

import (
	"fmt"
	"time"

	vo "github.com/sitedesk/sitedesk/internal/domain/complaint/valueobjects"
	"github.com/sitedesk/sitedesk/internal/shared/biztime"
)

// StatusHistory is one append-only audit row.
type StatusHistory struct {
	id          uint
	complaintID uint
	fromStatus  *vo.ComplaintStatus
	toStatus    vo.ComplaintStatus
	changedBy   uint
	note        string
	createdAt   time.Time
}

func NewStatusHistory(complaintID uint, tr Transition, changedBy uint, note string) (*StatusHistory, error) {
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID is required")
	}
	if !tr.To.IsValid() {
		return nil, fmt.Errorf("invalid target status: %s", tr.To)
	}
	return &StatusHistory{
		complaintID: complaintID,
		fromStatus:  tr.From,
		toStatus:    tr.To,
		changedBy:   changedBy,
		note:        note,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructStatusHistory(
	id, complaintID uint,
	from *vo.ComplaintStatus,
	to vo.ComplaintStatus,
	changedBy uint,
	note string,
	createdAt time.Time,
) *StatusHistory {
	return &StatusHistory{
		id:          id,
		complaintID: complaintID,
		fromStatus:  from,
		toStatus:    to,
		changedBy:   changedBy,
		note:        note,
		createdAt:   createdAt,
	}
}

func (h *StatusHistory) ID() uint { return h.id }
func (h *StatusHistory) ComplaintID() uint { return h.complaintID }
func (h *StatusHistory) FromStatus() *vo.ComplaintStatus { return h.fromStatus }
func (h *StatusHistory) ToStatus() vo.ComplaintStatus { return h.toStatus }
func (h *StatusHistory) ChangedBy() uint { return h.changedBy }
func (h *StatusHistory) Note() string { return h.note }
func (h *StatusHistory) CreatedAt() time.Time { return h.createdAt }

func (h *StatusHistory) SetID(id uint) {
	h.id = id
}
