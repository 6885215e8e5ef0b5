package commands

import (
	"context"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/services"
	"eats/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Prices the cart against the stored menu, persists the pending order, and
// announces it to the restaurant owner's subscription after commit.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence and an
// EventPublisher for post-commit notifications.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order placement command.
//
// A referenced dish missing from the menu fails the whole cart with an
// ObjectNotFoundError; no partial order is ever stored. The pending-order
// event is published only after the transaction commits, so subscribers
// never observe an order that was rolled back.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	policy := services.NewAuthorizationPolicy()
	if err := policy.Authorize(command.Actor(), services.CreateOrder); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rest, err := uow.RestaurantRepository().Get(ctx, command.RestaurantID())
	if err != nil {
		return err
	}

	items, total, err := services.NewPricingEngine().PriceOrder(rest, command.Items())
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		command.OrderID(),
		rest.ID(),
		command.Actor().ID(),
		items,
		total,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ports.TopicPendingOrders, ports.OrderEvent{
		Order:             aggregate,
		RestaurantOwnerID: rest.OwnerID(),
	})

	return nil
}
