package complaint

import "errors"

var (
	// ErrInvalidScope is returned when the complaint's scope forbids the operation.
	ErrInvalidScope = errors.New("operation not allowed for complaint scope")

	// ErrInvalidTransition is returned when the current status forbids the operation.
	ErrInvalidTransition = errors.New("invalid status transition")
)
