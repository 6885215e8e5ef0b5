package commands

import (
	"context"

	"eats/internal/core/domain/services"
)

// EditRestaurantCommandHandler handles the business logic for restaurant
// edits. Authorization runs against the stored restaurant before any
// mutation.
type EditRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewEditRestaurantCommandHandler creates a handler for restaurant edits.
// Requires a RestaurantUoWFactory for transactional persistence.
func NewEditRestaurantCommandHandler(uowFactory RestaurantUoWFactory) EditRestaurantCommandHandler {
	return EditRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restaurant edit command. Denies the edit when the
// actor does not own the restaurant; the stored restaurant is unchanged on
// any failure.
func (h EditRestaurantCommandHandler) Handle(ctx context.Context, command EditRestaurantCommand) error {
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

	restaurantRepo := uow.RestaurantRepository()

	aggregate, err := restaurantRepo.Get(ctx, command.RestaurantID())
	if err != nil {
		return err
	}

	policy := services.NewAuthorizationPolicy()
	if err = policy.CanActOnRestaurant(command.Actor(), services.EditRestaurant, aggregate); err != nil {
		return err
	}

	if err = aggregate.Rename(command.Name(), command.Address()); err != nil {
		return err
	}

	if err = restaurantRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
