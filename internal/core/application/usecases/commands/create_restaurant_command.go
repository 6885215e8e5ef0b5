package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/services"
	"eats/internal/pkg/guard"
)

var (
	ErrCreateRestaurantCommandIsNotConstructed = errors.New(
		"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
	)
	ErrActorIsRequired   = errors.New("actor is required")
	ErrNameIsRequired    = errors.New("name is required")
	ErrAddressIsRequired = errors.New("address is required")
)

// CreateRestaurantCommand represents a request to register a new restaurant
// owned by the acting user.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	actor        services.Actor
	restaurantID kernel.UUID
	name         string
	address      string

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand creates a command to register a new restaurant.
func NewCreateRestaurantCommand(
	actor services.Actor,
	restaurantID kernel.UUID,
	name, address string,
) (CreateRestaurantCommand, error) {
	command := CreateRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setRestaurantID(restaurantID),
		command.setName(name),
		command.setAddress(address),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateRestaurantCommandIsNotConstructed if validation fails.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

// Actor returns the authenticated identity performing the operation.
func (c CreateRestaurantCommand) Actor() services.Actor {
	return c.actor
}

// RestaurantID returns the unique identifier for the new restaurant.
func (c CreateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the restaurant's display name.
func (c CreateRestaurantCommand) Name() string {
	return c.name
}

// Address returns the restaurant's street address.
func (c CreateRestaurantCommand) Address() string {
	return c.address
}

func (c *CreateRestaurantCommand) setActor(actor services.Actor) error {
	if !actor.IsAuthenticated() {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}

func (c *CreateRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateRestaurantCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateRestaurantCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}
