package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/services"
	"eats/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one item is required")
)

// CreateOrderCommand represents a customer's submitted cart: the target
// restaurant and the requested dishes with their option selections. Prices
// are not part of the command; they are computed against the stored menu at
// handling time.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor        services.Actor
	orderID      kernel.UUID
	restaurantID kernel.UUID
	items        []services.ItemRequest

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that identifiers are valid and the cart is not empty.
func NewCreateOrderCommand(
	actor services.Actor,
	orderID, restaurantID kernel.UUID,
	items []services.ItemRequest,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setOrderID(orderID),
		command.setRestaurantID(restaurantID),
		command.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the authenticated identity performing the operation.
func (c CreateOrderCommand) Actor() services.Actor {
	return c.actor
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RestaurantID returns the identifier of the restaurant ordered from.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Items returns a copy of the requested cart lines.
func (c CreateOrderCommand) Items() []services.ItemRequest {
	return append([]services.ItemRequest(nil), c.items...)
}

func (c *CreateOrderCommand) setActor(actor services.Actor) error {
	if !actor.IsAuthenticated() {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setItems(items []services.ItemRequest) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = append([]services.ItemRequest(nil), items...)
	return nil
}
