package workflow

import (
	"errors"
	"fmt"

	"revolux/internal/domain/entities"
)

var (
	ErrInvalidTransition  = errors.New("action not valid from current status")
	ErrUnauthorizedAction = errors.New("role not allowed to perform action")
	ErrUnknownAction      = errors.New("unknown action")
	ErrValidation         = errors.New("invalid action payload")
)

// TransitionError describes a rejected action. It unwraps to one of the
// sentinel errors above.
type TransitionError struct {
	Action Action
	Status entities.OrderStatus
	Role   entities.Role
	Reason string
	Err    error
}

func (e *TransitionError) Error() string {
	msg := fmt.Sprintf("%s: action=%s status=%s role=%s", e.Err, e.Action, e.Status, e.Role)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *TransitionError) Unwrap() error { return e.Err }

func reject(err error, action Action, status entities.OrderStatus, role entities.Role, reason string) *TransitionError {
	return &TransitionError{Action: action, Status: status, Role: role, Reason: reason, Err: err}
}

func invalidPayload(action Action, status entities.OrderStatus, role entities.Role, format string, args ...any) *TransitionError {
	return reject(ErrValidation, action, status, role, fmt.Sprintf(format, args...))
}
