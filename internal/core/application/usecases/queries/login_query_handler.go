package queries

import (
	"context"
	"database/sql"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoginQueryHandler verifies account credentials against the database.
// A wrong email and a wrong password produce the same UnauthorizedError so
// the response does not reveal which accounts exist.
type LoginQueryHandler struct {
	db *gorm.DB
}

// NewLoginQueryHandler creates a handler for credential checks.
// Requires a GORM database connection for query execution.
func NewLoginQueryHandler(db *gorm.DB) LoginQueryHandler {
	return LoginQueryHandler{db: db}
}

// Handle executes the credential check and returns the account's identity
// on success.
func (h LoginQueryHandler) Handle(ctx context.Context, query LoginQuery) (LoginQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return LoginQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			password_hash,
			role
		FROM users
		WHERE email = ?
	`, query.Email()).Row()

	var id uuid.UUID
	var passwordHash, roleName string
	if err := row.Scan(&id, &passwordHash, &roleName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LoginQueryResponse{}, errs.NewUnauthorizedError("invalid credentials")
		}
		return LoginQueryResponse{}, err
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return LoginQueryResponse{}, err
	}
	role, err := user.RoleFromString(roleName)
	if err != nil {
		return LoginQueryResponse{}, err
	}

	account, err := user.RestoreUser(userID, query.Email(), passwordHash, role)
	if err != nil {
		return LoginQueryResponse{}, err
	}

	if err = account.CheckPassword(query.Password()); err != nil {
		return LoginQueryResponse{}, errs.NewUnauthorizedErrorWithCause("invalid credentials", err)
	}

	return LoginQueryResponse{
		UserID: userID,
		Role:   role,
	}, nil
}
