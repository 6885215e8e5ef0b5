package commands

import (
	"context"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/services"
	"eats/internal/core/ports"
)

// EditOrderCommandHandler handles the business logic for order status
// changes. Authorization and the transition table are both evaluated
// against the order's stored, pre-transition state.
type EditOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewEditOrderCommandHandler creates a handler for order status changes.
// Requires an OrderUoWFactory for transactional persistence and an
// EventPublisher for post-commit notifications.
func NewEditOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status change command.
//
// The stored status is updated with a guarded write: if another request
// moved the order meanwhile, the write affects nothing and the transition
// is rejected. After commit the update is published to the order's viewers,
// and an order that just became Cooked is additionally announced to the
// driver pool.
func (h EditOrderCommandHandler) Handle(ctx context.Context, command EditOrderCommand) error {
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
	if err = policy.CanActOnOrder(command.Actor(), services.EditOrder, aggregate, rest.OwnerID()); err != nil {
		return err
	}

	from := aggregate.Status()
	if err = aggregate.TransitionTo(command.Status(), command.Actor().Role()); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, aggregate.ID(), from, command.Status()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	event := ports.OrderEvent{
		Order:             aggregate,
		RestaurantOwnerID: rest.OwnerID(),
	}
	if command.Status() == order.Cooked {
		h.publisher.Publish(ports.TopicCookedOrders, event)
	}
	h.publisher.Publish(ports.TopicOrderUpdates, event)

	return nil
}
