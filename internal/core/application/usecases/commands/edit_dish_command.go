package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/services"
	"eats/internal/pkg/guard"
)

var ErrEditDishCommandIsNotConstructed = errors.New(
	"EditDishCommand must be created via NewEditDishCommand constructor",
)

// EditDishCommand represents a request to replace a dish's definition on the
// menu. Orders already placed keep the prices computed at order time.
type EditDishCommand struct { //nolint:recvcheck //using for validation
	actor        services.Actor
	restaurantID kernel.UUID
	dishID       kernel.UUID
	name         string
	description  string
	price        kernel.Price
	options      []restaurant.DishOption

	guard guard.ConstructorGuard
}

// NewEditDishCommand creates a command to edit a dish.
func NewEditDishCommand(
	actor services.Actor,
	restaurantID, dishID kernel.UUID,
	name, description string,
	price kernel.Price,
	options []restaurant.DishOption,
) (EditDishCommand, error) {
	command := EditDishCommand{
		description: description,
		options:     append([]restaurant.DishOption(nil), options...),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setRestaurantID(restaurantID),
		command.setDishID(dishID),
		command.setName(name),
	); err != nil {
		return EditDishCommand{}, err
	}
	command.price = price

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEditDishCommandIsNotConstructed if validation fails.
func (c EditDishCommand) Validate() error {
	return c.guard.Validate(ErrEditDishCommandIsNotConstructed)
}

// Actor returns the authenticated identity performing the operation.
func (c EditDishCommand) Actor() services.Actor {
	return c.actor
}

// RestaurantID returns the identifier of the restaurant the dish belongs to.
func (c EditDishCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// DishID returns the identifier of the dish to edit.
func (c EditDishCommand) DishID() kernel.UUID {
	return c.dishID
}

// Name returns the new display name.
func (c EditDishCommand) Name() string {
	return c.name
}

// Description returns the new menu description.
func (c EditDishCommand) Description() string {
	return c.description
}

// Price returns the new base price.
func (c EditDishCommand) Price() kernel.Price {
	return c.price
}

// Options returns a copy of the new customization options.
func (c EditDishCommand) Options() []restaurant.DishOption {
	return append([]restaurant.DishOption(nil), c.options...)
}

func (c *EditDishCommand) setActor(actor services.Actor) error {
	if !actor.IsAuthenticated() {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}

func (c *EditDishCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *EditDishCommand) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return err
	}

	c.dishID = dishID
	return nil
}

func (c *EditDishCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
