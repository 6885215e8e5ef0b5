package ports

import (
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/eventbus"
)

// Order lifecycle topics. Subscribers attach authorization-derived filters;
// publishing is always unfiltered (see EventPublisher).
const (
	// TopicPendingOrders carries newly created orders. Each owner
	// subscribes with a filter on RestaurantOwnerID.
	TopicPendingOrders eventbus.Topic = "orders.pending"

	// TopicCookedOrders announces orders ready for pickup to the whole
	// driver pool.
	TopicCookedOrders eventbus.Topic = "orders.cooked"

	// TopicOrderUpdates carries every order mutation. Viewers of a single
	// order subscribe with a filter on the order's ID.
	TopicOrderUpdates eventbus.Topic = "orders.updates"
)

// OrderEvent is the payload published on every order lifecycle topic. It
// carries the full order plus the restaurant owner's ID so subscriber-side
// filters can route per owner without a storage lookup.
type OrderEvent struct {
	Order             *order.Order
	RestaurantOwnerID kernel.UUID
}

// EventPublisher is the outbound notification contract for the command
// handlers. Publish is fire-and-forget: it must never block and its
// failures must never fail the mutation that triggered it. Who receives an
// event is decided entirely by subscriber-side filters, never by the
// publisher.
type EventPublisher interface {
	Publish(topic eventbus.Topic, event OrderEvent)
}
