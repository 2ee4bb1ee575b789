package complaint

import (
	"fmt"
	"time"

	vo "github.com/sitedesk/sitedesk/internal/domain/complaint/valueobjects"
	"github.com/sitedesk/sitedesk/internal/shared/biztime"
)

const MaxResultNoteLength = 2000

// WorkOrder is an on-site execution ticket derived from an assignment.
type WorkOrder struct {
	id             uint
	complaintID    uint
	assigneeUserID uint
	status         vo.WorkOrderStatus
	scheduledAt    *time.Time
	completedAt    *time.Time
	resultNote     string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewWorkOrder(complaintID, assigneeUserID uint, scheduledAt *time.Time, note string) (*WorkOrder, error) {
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID is required")
	}
	if assigneeUserID == 0 {
		return nil, fmt.Errorf("assignee is required")
	}
	if len([]rune(note)) > MaxResultNoteLength {
		return nil, fmt.Errorf("note exceeds maximum length of %d characters", MaxResultNoteLength)
	}

	now := biztime.NowUTC()
	return &WorkOrder{
		complaintID:    complaintID,
		assigneeUserID: assigneeUserID,
		status:         vo.WorkOrderOpen,
		scheduledAt:    scheduledAt,
		resultNote:     note,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructWorkOrder(
	id, complaintID, assigneeUserID uint,
	status vo.WorkOrderStatus,
	scheduledAt, completedAt *time.Time,
	resultNote string,
	createdAt, updatedAt time.Time,
) (*WorkOrder, error) {
	if id == 0 {
		return nil, fmt.Errorf("work order ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid work order status: %s", status)
	}
	return &WorkOrder{
		id:             id,
		complaintID:    complaintID,
		assigneeUserID: assigneeUserID,
		status:         status,
		scheduledAt:    scheduledAt,
		completedAt:    completedAt,
		resultNote:     resultNote,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (w *WorkOrder) ID() uint { return w.id }
func (w *WorkOrder) ComplaintID() uint { return w.complaintID }
func (w *WorkOrder) AssigneeUserID() uint { return w.assigneeUserID }
func (w *WorkOrder) Status() vo.WorkOrderStatus { return w.status }
func (w *WorkOrder) ScheduledAt() *time.Time { return w.scheduledAt }
func (w *WorkOrder) CompletedAt() *time.Time { return w.completedAt }
func (w *WorkOrder) ResultNote() string { return w.resultNote }
func (w *WorkOrder) CreatedAt() time.Time { return w.createdAt }
func (w *WorkOrder) UpdatedAt() time.Time { return w.updatedAt }

func (w *WorkOrder) SetID(id uint) error {
	if w.id != 0 {
		return fmt.Errorf("work order ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("work order ID cannot be zero")
	}
	w.id = id
	return nil
}

// IsActive reports whether the work order still represents pending work.
func (w *WorkOrder) IsActive() bool { return !w.status.IsFinal() }

// ChangeStatus moves the work order to next. Patching to the current status
// only replaces the note and reports changed=false.
func (w *WorkOrder) ChangeStatus(next vo.WorkOrderStatus, note *string) (changed bool, err error) {
	if !next.IsValid() {
		return false, fmt.Errorf("invalid work order status: %s", next)
	}
	if note != nil && len([]rune(*note)) > MaxResultNoteLength {
		return false, fmt.Errorf("note exceeds maximum length of %d characters", MaxResultNoteLength)
	}

	now := biztime.NowUTC()
	if next == w.status {
		if note != nil {
			w.resultNote = *note
			w.updatedAt = now
		}
		return false, nil
	}
	if !w.status.CanTransitionTo(next) {
		return false, fmt.Errorf("%w: work order cannot move from %s to %s", ErrInvalidTransition, w.status, next)
	}

	w.status = next
	if note != nil {
		w.resultNote = *note
	}
	if next == vo.WorkOrderDone && w.completedAt == nil {
		w.completedAt = &now
	}
	w.updatedAt = now
	return true, nil
}
