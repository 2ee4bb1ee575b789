package valueobjects

import "fmt"

type WorkOrderStatus string

const (
	WorkOrderOpen       WorkOrderStatus = "OPEN"
	WorkOrderDispatched WorkOrderStatus = "DISPATCHED"
	WorkOrderDone       WorkOrderStatus = "DONE"
	WorkOrderCanceled   WorkOrderStatus = "CANCELED"
)

var validWorkOrderStatuses = map[WorkOrderStatus]bool{
	WorkOrderOpen:       true,
	WorkOrderDispatched: true,
	WorkOrderDone:       true,
	WorkOrderCanceled:   true,
}

var workOrderTransitions = map[WorkOrderStatus][]WorkOrderStatus{
	WorkOrderOpen: {
		WorkOrderDispatched,
		WorkOrderDone,
		WorkOrderCanceled,
	},
	WorkOrderDispatched: {
		WorkOrderDone,
		WorkOrderCanceled,
	},
}

func (s WorkOrderStatus) String() string {
	return string(s)
}

func (s WorkOrderStatus) IsValid() bool {
	return validWorkOrderStatuses[s]
}

func (s WorkOrderStatus) IsFinal() bool {
	return s == WorkOrderDone || s == WorkOrderCanceled
}

func (s WorkOrderStatus) CanTransitionTo(next WorkOrderStatus) bool {
	for _, allowed := range workOrderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func NewWorkOrderStatus(s string) (WorkOrderStatus, error) {
	ws := WorkOrderStatus(s)
	if !ws.IsValid() {
		return "", fmt.Errorf("invalid work order status: %s", s)
	}
	return ws, nil
}
