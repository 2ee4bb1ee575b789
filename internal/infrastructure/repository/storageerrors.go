package repository

import (
	"fmt"
	"strings"

	"github.com/sitedesk/sitedesk/internal/shared/errors"
)

// scopeGuardMessage is raised by the work_orders insert trigger.
const scopeGuardMessage = "work order not allowed for PRIVATE complaint"

// translateWriteError maps storage rejections to application errors so that
// raw driver text never reaches callers. Unknown errors are wrapped.
func translateWriteError(err error, action string) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, scopeGuardMessage):
		return errors.NewInvalidScopeError("work orders are not allowed for PRIVATE complaints")
	case errors.IsDuplicateError(err):
		return errors.NewConflictError("record already exists")
	case isCheckViolation(msg):
		return errors.NewValidationError("record violates a data constraint")
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

func isCheckViolation(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "check constraint")
}
