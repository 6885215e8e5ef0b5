package user

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

	// ErrWrongPassword is returned by CheckPassword when the supplied password
	// does not match the stored hash.
	ErrWrongPassword = errors.New("wrong password")
)

// User is the identity aggregate. A user has exactly one Role: clients place
// orders, owners run restaurants, delivery drivers claim orders, and admins
// bypass authorization checks.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Email must be non-empty
//   - Role must be one of the defined roles and never changes after creation
//   - Password is stored only as a bcrypt hash
//
// The struct uses private fields; construct through NewUser (fresh identity,
// hashes the password) or RestoreUser (reconstruction from persistence).
type User struct {
	id           kernel.UUID
	email        string
	passwordHash string
	role         Role

	isConstructed bool
}

// NewUser creates a user with a freshly hashed password.
//
// Parameters:
//   - id: unique identifier (must be valid)
//   - email: login identity (must be non-empty; uniqueness is enforced at the storage boundary)
//   - password: plaintext password, hashed with bcrypt before it is stored
//   - role: the user's fixed role
func NewUser(id kernel.UUID, email, password string, role Role) (*User, error) {
	u := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	if password == "" {
		return nil, errs.NewValueIsRequiredError("password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u.passwordHash = string(hash)

	return u, nil
}

// RestoreUser reconstructs a user from persistence with an existing password hash.
func RestoreUser(id kernel.UUID, email, passwordHash string, role Role) (*User, error) {
	u := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	if passwordHash == "" {
		return nil, errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = passwordHash

	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the user's login email.
func (u *User) Email() string {
	return u.email
}

// Role returns the user's fixed role.
func (u *User) Role() Role {
	return u.role
}

// PasswordHash returns the stored bcrypt hash, for persistence only.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// CheckPassword compares a plaintext password against the stored hash.
// Returns ErrWrongPassword on mismatch.
func (u *User) CheckPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)); err != nil {
		return ErrWrongPassword
	}
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
