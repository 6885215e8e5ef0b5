package queries

import (
	"errors"
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var (
	ErrLoginQueryIsNotConstructed = errors.New(
		"LoginQuery must be created via NewLoginQuery constructor",
	)
	ErrCredentialsAreRequired = errors.New("email and password are required")
)

// LoginQuery represents a credential check against a stored account.
type LoginQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginQuery creates a query to verify account credentials.
func NewLoginQuery(email, password string) (LoginQuery, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return LoginQuery{}, ErrCredentialsAreRequired
	}

	return LoginQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrLoginQueryIsNotConstructed if validation fails.
func (q LoginQuery) Validate() error {
	return q.guard.Validate(ErrLoginQueryIsNotConstructed)
}

// Email returns the email to look up.
func (q LoginQuery) Email() string {
	return q.email
}

// Password returns the plaintext password to verify.
func (q LoginQuery) Password() string {
	return q.password
}

// LoginQueryResponse carries the verified account's identity. The transport
// layer turns this into a signed token.
type LoginQueryResponse struct {
	UserID kernel.UUID
	Role   user.Role
}
