package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/services"
	"eats/internal/pkg/guard"
)

var ErrEditRestaurantCommandIsNotConstructed = errors.New(
	"EditRestaurantCommand must be created via NewEditRestaurantCommand constructor",
)

// EditRestaurantCommand represents a request to change a restaurant's name
// or address. Only the restaurant's owner may edit it.
type EditRestaurantCommand struct { //nolint:recvcheck //using for validation
	actor        services.Actor
	restaurantID kernel.UUID
	name         string
	address      string

	guard guard.ConstructorGuard
}

// NewEditRestaurantCommand creates a command to edit a restaurant.
func NewEditRestaurantCommand(
	actor services.Actor,
	restaurantID kernel.UUID,
	name, address string,
) (EditRestaurantCommand, error) {
	command := EditRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setRestaurantID(restaurantID),
		command.setName(name),
		command.setAddress(address),
	); err != nil {
		return EditRestaurantCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEditRestaurantCommandIsNotConstructed if validation fails.
func (c EditRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrEditRestaurantCommandIsNotConstructed)
}

// Actor returns the authenticated identity performing the operation.
func (c EditRestaurantCommand) Actor() services.Actor {
	return c.actor
}

// RestaurantID returns the identifier of the restaurant to edit.
func (c EditRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the new display name.
func (c EditRestaurantCommand) Name() string {
	return c.name
}

// Address returns the new street address.
func (c EditRestaurantCommand) Address() string {
	return c.address
}

func (c *EditRestaurantCommand) setActor(actor services.Actor) error {
	if !actor.IsAuthenticated() {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}

func (c *EditRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *EditRestaurantCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *EditRestaurantCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}
