package commands

import (
	"context"

	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/services"
)

// CreateRestaurantCommandHandler handles the business logic for restaurant
// registration. The acting user becomes the owner.
type CreateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewCreateRestaurantCommandHandler creates a handler for restaurant
// registration. Requires a RestaurantUoWFactory for transactional
// persistence.
func NewCreateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restaurant creation command. Only an Owner may
// register a restaurant.
func (h CreateRestaurantCommandHandler) Handle(ctx context.Context, command CreateRestaurantCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	policy := services.NewAuthorizationPolicy()
	if err := policy.Authorize(command.Actor(), services.CreateRestaurant); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := restaurant.NewRestaurant(
		command.RestaurantID(),
		command.Actor().ID(),
		command.Name(),
		command.Address(),
	)
	if err != nil {
		return err
	}

	if err = uow.RestaurantRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
