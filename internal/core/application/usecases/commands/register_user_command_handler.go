package commands

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
)

// ErrEmailIsTaken is returned when the requested email already belongs to an
// account.
var ErrEmailIsTaken = errors.New("email is already taken")

// RegisterUserCommandHandler handles the business logic for account creation.
// The password is hashed inside the user aggregate; the handler never sees
// or stores plaintext beyond the command's lifetime.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for account registration.
// Requires a UserUoWFactory for transactional persistence.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. Rejects the registration with
// ErrEmailIsTaken when an account with the same email already exists.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, command RegisterUserCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	_, err := userRepo.GetByEmail(ctx, command.Email())
	if err == nil {
		return ErrEmailIsTaken
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := user.NewUser(command.UserID(), command.Email(), command.Password(), command.Role())
	if err != nil {
		return err
	}

	if err = userRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
