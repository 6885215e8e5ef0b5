package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is the sentinel for all UnauthorizedError instances.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidTransition is the sentinel for all InvalidTransitionError instances.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrAlreadyAssigned is the sentinel for all AlreadyAssignedError instances.
	ErrAlreadyAssigned = errors.New("already assigned")
)

// UnauthorizedError indicates that an actor is not permitted to perform an action,
// either because of their role or because they fail an ownership check.
// The Reason field explains which check was failed and is safe to surface to callers.
type UnauthorizedError struct {
	Reason string
	Cause  error
}

// NewUnauthorizedError creates an UnauthorizedError with the given reason.
func NewUnauthorizedError(reason string) *UnauthorizedError {
	return &UnauthorizedError{Reason: reason}
}

// NewUnauthorizedErrorWithCause creates an UnauthorizedError wrapping an underlying cause.
func NewUnauthorizedErrorWithCause(reason string, cause error) *UnauthorizedError {
	return &UnauthorizedError{Reason: reason, Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrUnauthorized, e.Reason, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrUnauthorized, e.Reason))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// InvalidTransitionError indicates that an order status change was rejected,
// either because the (from, to) pair is not in the transition table, because
// the acting role is not permitted to perform it, or because the stored
// status changed under a guarded write. Role is empty in the last case.
type InvalidTransitionError struct {
	From string
	To   string
	Role string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given transition attempt.
func NewInvalidTransitionError(from, to, role string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Role: role}
}

func (e *InvalidTransitionError) Error() string {
	if e.Role == "" {
		return sanitize(fmt.Sprintf("%s: %s -> %s is no longer possible",
			ErrInvalidTransition, e.From, e.To))
	}
	return sanitize(fmt.Sprintf("%s: %s -> %s is not permitted for role %s",
		ErrInvalidTransition, e.From, e.To, e.Role))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// AlreadyAssignedError indicates that an order already has a driver and
// cannot be taken again. Returned to the loser of a take-order race.
type AlreadyAssignedError struct {
	OrderID string
}

// NewAlreadyAssignedError creates an AlreadyAssignedError for the given order.
func NewAlreadyAssignedError(orderID string) *AlreadyAssignedError {
	return &AlreadyAssignedError{OrderID: orderID}
}

func (e *AlreadyAssignedError) Error() string {
	return sanitize(fmt.Sprintf("%s: order %s already has a driver", ErrAlreadyAssigned, e.OrderID))
}

func (e *AlreadyAssignedError) Unwrap() error {
	return ErrAlreadyAssigned
}
