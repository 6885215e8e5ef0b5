package commands

import (
	"context"

	"eats/internal/core/domain/services"
	"eats/internal/core/ports"
)

// TakeOrderCommandHandler handles the business logic for driver assignment.
//
// Two drivers racing for the same order resolve at the storage layer: the
// assignment is a compare-and-set on the driver column, so exactly one
// claim succeeds and every other concurrent claim fails with
// AlreadyAssignedError, regardless of what the aggregates loaded into
// memory said.
type TakeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewTakeOrderCommandHandler creates a handler for driver assignment.
// Requires an OrderUoWFactory for transactional persistence and an
// EventPublisher for post-commit notifications.
func NewTakeOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) TakeOrderCommandHandler {
	return TakeOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the claim. Fails with AlreadyAssignedError when the
// order already has a driver, whether observed on the loaded aggregate or
// lost in the storage race.
func (h TakeOrderCommandHandler) Handle(ctx context.Context, command TakeOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	rest, err := uow.RestaurantRepository().Get(ctx, aggregate.RestaurantID())
	if err != nil {
		return err
	}

	policy := services.NewAuthorizationPolicy()
	if err = policy.CanActOnOrder(command.Actor(), services.TakeOrder, aggregate, rest.OwnerID()); err != nil {
		return err
	}

	if err = aggregate.AssignDriver(command.Actor().ID()); err != nil {
		return err
	}

	if err = orderRepo.AssignDriver(ctx, aggregate.ID(), command.Actor().ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ports.TopicOrderUpdates, ports.OrderEvent{
		Order:             aggregate,
		RestaurantOwnerID: rest.OwnerID(),
	})

	return nil
}
