package valueobjects

import "fmt"

// VisitReason is the enumerated justification for entering a unit.
type VisitReason string

const (
	VisitReasonFireInspection VisitReason = "FIRE_INSPECTION"
	VisitReasonNeighborDamage VisitReason = "NEIGHBOR_DAMAGE"
	VisitReasonEmergencyInfra VisitReason = "EMERGENCY_INFRA"
)

var validVisitReasons = map[VisitReason]bool{
	VisitReasonFireInspection: true,
	VisitReasonNeighborDamage: true,
	VisitReasonEmergencyInfra: true,
}

func (v VisitReason) String() string {
	return string(v)
}

func (v VisitReason) IsValid() bool {
	return validVisitReasons[v]
}

func NewVisitReason(s string) (VisitReason, error) {
	v := VisitReason(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid visit reason: %s", s)
	}
	return v, nil
}
