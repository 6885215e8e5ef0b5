package order

import (
	"fmt"

	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with role-gated transitions:
//
//	Pending ──> Cooking ──> Cooked ──> PickedUp ──> Delivered
//	   (Owner)     (Owner)    (Delivery)    (Delivery)
//
// No transition skips a state and no backward transition is permitted.
// Driver assignment is a separate operation on the Order aggregate, not
// a status transition.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Pending is the initial status when a customer submits a cart.
	Pending

	// Cooking indicates the restaurant has accepted the order and is preparing it.
	Cooking

	// Cooked indicates preparation has finished and the order awaits pickup.
	Cooked

	// PickedUp indicates the driver has collected the order.
	PickedUp

	// Delivered indicates the order has reached the customer.
	// This is a final state with no further transitions.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Pending:       "Pending",
		Cooking:       "Cooking",
		Cooked:        "Cooked",
		PickedUp:      "PickedUp",
		Delivered:     "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Cooking:   "Cooking",
		Cooked:    "Cooked",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
	}
}

// transition is a (from, to) pair in the status state machine.
type transition struct {
	from Status
	to   Status
}

// transitionRights is the complete table of legal transitions and the role
// allowed to perform each. Anything absent from this table is rejected.
// Admin is handled by the authorization policy, not here.
func transitionRights() map[transition]user.Role {
	return map[transition]user.Role{
		{from: Pending, to: Cooking}:    user.Owner,
		{from: Cooking, to: Cooked}:     user.Owner,
		{from: Cooked, to: PickedUp}:    user.Delivery,
		{from: PickedUp, to: Delivered}: user.Delivery,
	}
}

// StatusFromString parses a status name as stored in the database and
// carried on the wire.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status value is one of the defined statuses.
// UnknownStatus (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Transition validates a status change against the transition table.
//
// Returns the new status when (s, to) is a legal transition and the role is
// the one entitled to perform it. Every other combination, including
// same-state and backward transitions, yields an InvalidTransitionError.
//
// Example:
//
//	next, err := currentStatus.Transition(order.Cooking, user.Owner)
//	if err != nil {
//	    // Transition rejected; the order keeps its current status
//	}
func (s Status) Transition(to Status, by user.Role) (Status, error) {
	if err := to.Validate(); err != nil {
		return UnknownStatus, err
	}

	allowedRole, ok := transitionRights()[transition{from: s, to: to}]
	if !ok || allowedRole != by {
		return UnknownStatus, errs.NewInvalidTransitionError(s.String(), to.String(), by.String())
	}

	return to, nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered
}
