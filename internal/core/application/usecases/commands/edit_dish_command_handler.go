package commands

import (
	"context"

	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/services"
)

// EditDishCommandHandler handles the business logic for dish edits. The
// dish definition is replaced wholesale; existing orders are unaffected
// because items snapshot their price at order time.
type EditDishCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewEditDishCommandHandler creates a handler for dish edits.
// Requires a RestaurantUoWFactory for transactional persistence.
func NewEditDishCommandHandler(uowFactory RestaurantUoWFactory) EditDishCommandHandler {
	return EditDishCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dish edit command. Fails with an ObjectNotFoundError
// when the dish is not on the restaurant's menu.
func (h EditDishCommandHandler) Handle(ctx context.Context, command EditDishCommand) error {
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
	if err = policy.CanActOnRestaurant(command.Actor(), services.EditDish, aggregate); err != nil {
		return err
	}

	dish, err := restaurant.NewDish(
		command.DishID(),
		command.Name(),
		command.Description(),
		command.Price(),
		command.Options(),
	)
	if err != nil {
		return err
	}

	if err = aggregate.ReplaceDish(dish); err != nil {
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
