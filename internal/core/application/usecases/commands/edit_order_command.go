package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/services"
	"eats/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand represents a request to move an order to a new status.
// The acting role decides which transitions are available: the restaurant
// owner progresses preparation, the assigned driver progresses delivery.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	actor   services.Actor
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewEditOrderCommand creates a command to change an order's status.
func NewEditOrderCommand(actor services.Actor, orderID kernel.UUID, status order.Status) (EditOrderCommand, error) {
	command := EditOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setOrderID(orderID),
		command.setStatus(status),
	); err != nil {
		return EditOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEditOrderCommandIsNotConstructed if validation fails.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

// Actor returns the authenticated identity performing the operation.
func (c EditOrderCommand) Actor() services.Actor {
	return c.actor
}

// OrderID returns the identifier of the order to progress.
func (c EditOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested target status.
func (c EditOrderCommand) Status() order.Status {
	return c.status
}

func (c *EditOrderCommand) setActor(actor services.Actor) error {
	if !actor.IsAuthenticated() {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}

func (c *EditOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *EditOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
