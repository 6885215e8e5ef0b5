package user

import (
	"fmt"

	"eats/internal/pkg/errs"
)

// Role represents a user's fixed place in the platform. It decides which
// operations the user may invoke and which resources they may act on.
//
// Role is assigned at registration and is immutable afterwards.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Client places orders against restaurant menus.
	Client

	// Owner runs one or more restaurants and progresses orders through preparation.
	Owner

	// Delivery claims cooked orders and completes them.
	Delivery

	// Admin bypasses role and ownership checks on every operation.
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "Unknown",
		Client:      "Client",
		Owner:       "Owner",
		Delivery:    "Delivery",
		Admin:       "Admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Client:   "Client",
		Owner:    "Owner",
		Delivery: "Delivery",
		Admin:    "Admin",
	}
}

// RoleFromString parses a role name as stored in tokens and the database.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role value is one of the defined roles.
// UnknownRole (0) and any other values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// Implements fmt.Stringer and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
