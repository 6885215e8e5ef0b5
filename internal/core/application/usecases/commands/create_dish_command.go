package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/services"
	"eats/internal/pkg/guard"
)

var ErrCreateDishCommandIsNotConstructed = errors.New(
	"CreateDishCommand must be created via NewCreateDishCommand constructor",
)

// CreateDishCommand represents a request to add a dish to a restaurant's
// menu. Options arrive already parsed into their closed flat-surcharge or
// choice-list form by the transport adapter.
type CreateDishCommand struct { //nolint:recvcheck //using for validation
	actor        services.Actor
	restaurantID kernel.UUID
	dishID       kernel.UUID
	name         string
	description  string
	price        kernel.Price
	options      []restaurant.DishOption

	guard guard.ConstructorGuard
}

// NewCreateDishCommand creates a command to add a dish to a menu.
func NewCreateDishCommand(
	actor services.Actor,
	restaurantID, dishID kernel.UUID,
	name, description string,
	price kernel.Price,
	options []restaurant.DishOption,
) (CreateDishCommand, error) {
	command := CreateDishCommand{
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
		return CreateDishCommand{}, err
	}
	command.price = price

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDishCommandIsNotConstructed if validation fails.
func (c CreateDishCommand) Validate() error {
	return c.guard.Validate(ErrCreateDishCommandIsNotConstructed)
}

// Actor returns the authenticated identity performing the operation.
func (c CreateDishCommand) Actor() services.Actor {
	return c.actor
}

// RestaurantID returns the identifier of the restaurant gaining the dish.
func (c CreateDishCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// DishID returns the unique identifier for the new dish.
func (c CreateDishCommand) DishID() kernel.UUID {
	return c.dishID
}

// Name returns the dish's display name.
func (c CreateDishCommand) Name() string {
	return c.name
}

// Description returns the dish's menu description.
func (c CreateDishCommand) Description() string {
	return c.description
}

// Price returns the dish's base price.
func (c CreateDishCommand) Price() kernel.Price {
	return c.price
}

// Options returns a copy of the dish's customization options.
func (c CreateDishCommand) Options() []restaurant.DishOption {
	return append([]restaurant.DishOption(nil), c.options...)
}

func (c *CreateDishCommand) setActor(actor services.Actor) error {
	if !actor.IsAuthenticated() {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}

func (c *CreateDishCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateDishCommand) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return err
	}

	c.dishID = dishID
	return nil
}

func (c *CreateDishCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
