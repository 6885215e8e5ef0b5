package commands

import (
	"context"

	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/services"
)

// CreateDishCommandHandler handles the business logic for adding a dish to
// a menu.
type CreateDishCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewCreateDishCommandHandler creates a handler for dish creation.
// Requires a RestaurantUoWFactory for transactional persistence.
func NewCreateDishCommandHandler(uowFactory RestaurantUoWFactory) CreateDishCommandHandler {
	return CreateDishCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dish creation command. Only the restaurant's owner
// may extend its menu; a duplicate dish ID is rejected by the aggregate.
func (h CreateDishCommandHandler) Handle(ctx context.Context, command CreateDishCommand) error {
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
	if err = policy.CanActOnRestaurant(command.Actor(), services.CreateDish, aggregate); err != nil {
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

	if err = aggregate.AddDish(dish); err != nil {
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
