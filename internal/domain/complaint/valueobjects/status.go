package valueobjects

import "fmt"

type ComplaintStatus string

const (
	StatusReceived     ComplaintStatus = "RECEIVED"
	StatusTriaged      ComplaintStatus = "TRIAGED"
	StatusGuidanceSent ComplaintStatus = "GUIDANCE_SENT"
	StatusAssigned     ComplaintStatus = "ASSIGNED"
	StatusInProgress   ComplaintStatus = "IN_PROGRESS"
	StatusCompleted    ComplaintStatus = "COMPLETED"
	StatusClosed       ComplaintStatus = "CLOSED"
)

var validComplaintStatuses = map[ComplaintStatus]bool{
	StatusReceived:     true,
	StatusTriaged:      true,
	StatusGuidanceSent: true,
	StatusAssigned:     true,
	StatusInProgress:   true,
	StatusCompleted:    true,
	StatusClosed:       true,
}

var complaintStatusTransitions = map[ComplaintStatus][]ComplaintStatus{
	StatusReceived: {
		StatusTriaged,
		StatusGuidanceSent,
	},
	StatusTriaged: {
		StatusTriaged,
		StatusGuidanceSent,
		StatusAssigned,
	},
	StatusAssigned: {
		StatusAssigned,
		StatusInProgress,
		StatusCompleted,
	},
	StatusInProgress: {
		StatusAssigned,
		StatusCompleted,
	},
	StatusCompleted: {
		StatusClosed,
	},
	StatusGuidanceSent: {
		StatusClosed,
	},
	StatusClosed: {},
}

// AllStatuses returns every status in lifecycle order.
func AllStatuses() []ComplaintStatus {
	return []ComplaintStatus{
		StatusReceived,
		StatusTriaged,
		StatusGuidanceSent,
		StatusAssigned,
		StatusInProgress,
		StatusCompleted,
		StatusClosed,
	}
}

func (s ComplaintStatus) String() string {
	return string(s)
}

func (s ComplaintStatus) IsValid() bool {
	return validComplaintStatuses[s]
}

func (s ComplaintStatus) CanTransitionTo(next ComplaintStatus) bool {
	for _, allowed := range complaintStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsResolved reports whether the complaint no longer needs work.
func (s ComplaintStatus) IsResolved() bool {
	return s == StatusCompleted || s == StatusClosed
}

// ResolvedStatuses lists the statuses excluded from the delayed count.
func ResolvedStatuses() []ComplaintStatus {
	var resolved []ComplaintStatus
	for _, s := range AllStatuses() {
		if s.IsResolved() {
			resolved = append(resolved, s)
		}
	}
	return resolved
}

// IsAssignable reports whether a work order may be created. ASSIGNED is
// included for reassignment after the previous work order was canceled.
func (s ComplaintStatus) IsAssignable() bool {
	return s == StatusTriaged || s == StatusAssigned
}

// IsTriageable reports whether scope and priority may still be changed.
func (s ComplaintStatus) IsTriageable() bool {
	return s == StatusReceived || s == StatusTriaged
}

func NewComplaintStatus(s string) (ComplaintStatus, error) {
	cs := ComplaintStatus(s)
	if !cs.IsValid() {
		return "", fmt.Errorf("invalid complaint status: %s", s)
	}
	return cs, nil
}
