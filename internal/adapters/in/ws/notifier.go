// Package ws is the inbound websocket adapter. It bridges the in-process
// event bus to live connections: each connection becomes one bus
// subscription whose filter encodes what that actor is allowed to watch.
package ws

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	httpadapter "eats/internal/adapters/in/http"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/services"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/eventbus"
)

// orderMessage is the wire shape pushed to subscribers. It is a summary, not
// the full order: clients that need items fetch the order over HTTP.
type orderMessage struct {
	OrderID      string `json:"orderId"`
	RestaurantID string `json:"restaurantId"`
	CustomerID   string `json:"customerId"`
	DriverID     string `json:"driverId,omitempty"`
	Status       string `json:"status"`
	Total        int64  `json:"total"`
}

func toOrderMessage(event ports.OrderEvent) orderMessage {
	msg := orderMessage{
		OrderID:      event.Order.ID().String(),
		RestaurantID: event.Order.RestaurantID().String(),
		CustomerID:   event.Order.CustomerID().String(),
		Status:       event.Order.Status().String(),
		Total:        event.Order.Total().Amount(),
	}
	if driverID := event.Order.DriverID(); driverID != nil {
		msg.DriverID = driverID.String()
	}
	return msg
}

// Notifier serves the live order streams. Authorization happens before the
// websocket upgrade so a denied subscriber gets a plain HTTP status; after
// the upgrade the subscription filter is the only gate.
type Notifier struct {
	bus      *eventbus.Bus[ports.OrderEvent]
	policy   services.AuthorizationPolicy
	getOrder queries.GetOrderQueryHandler
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func NewNotifier(
	bus *eventbus.Bus[ports.OrderEvent],
	policy services.AuthorizationPolicy,
	getOrder queries.GetOrderQueryHandler,
	logger *slog.Logger,
) (*Notifier, error) {
	if bus == nil {
		return nil, errs.NewValueIsRequiredError("bus")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &Notifier{
		bus:      bus,
		policy:   policy,
		getOrder: getOrder,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger.With("component", "ws"),
	}, nil
}

// RegisterRoutes mounts the stream endpoints. Browsers cannot set headers on
// websocket requests, so the auth middleware also accepts the token as a
// query parameter.
func (n *Notifier) RegisterRoutes(e *echo.Echo, signer httpadapter.TokenSigner) {
	g := e.Group("/ws", httpadapter.AuthMiddleware(signer))
	g.GET("/orders/pending", n.PendingOrders)
	g.GET("/orders/cooked", n.CookedOrders)
	g.GET("/orders/:orderID", n.OrderUpdates)
}

// PendingOrders streams newly placed orders to the restaurant owner.
func (n *Notifier) PendingOrders(c echo.Context) error {
	actor, ok := httpadapter.ActorFromContext(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}
	if err := n.policy.Authorize(actor, services.SubscribePendingOrders); err != nil {
		return c.NoContent(http.StatusForbidden)
	}

	ownerID := actor.ID()
	return n.serve(c, ports.TopicPendingOrders, func(event ports.OrderEvent) bool {
		return event.RestaurantOwnerID.IsEqual(ownerID)
	})
}

// CookedOrders streams orders ready for pickup to the driver pool. Every
// driver sees every cooked order; claiming one is a separate race decided by
// the take-order command.
func (n *Notifier) CookedOrders(c echo.Context) error {
	actor, ok := httpadapter.ActorFromContext(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}
	if err := n.policy.Authorize(actor, services.SubscribeCookedOrders); err != nil {
		return c.NoContent(http.StatusForbidden)
	}

	return n.serve(c, ports.TopicCookedOrders, nil)
}

// OrderUpdates streams status changes of a single order to its participants.
// The order is fetched once up front so strangers are rejected before the
// upgrade; the filter re-checks participation per event because a driver
// joins the order mid-lifecycle.
func (n *Notifier) OrderUpdates(c echo.Context) error {
	actor, ok := httpadapter.ActorFromContext(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}
	if err := n.policy.Authorize(actor, services.SubscribeOrderUpdates); err != nil {
		return c.NoContent(http.StatusForbidden)
	}

	orderID, err := kernel.UUIDFromString(c.Param("orderID"))
	if err != nil {
		return c.NoContent(http.StatusUnprocessableEntity)
	}

	query, err := queries.NewGetOrderQuery(actor, orderID)
	if err != nil {
		return c.NoContent(http.StatusUnprocessableEntity)
	}
	if _, err := n.getOrder.Handle(c.Request().Context(), query); err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return c.NoContent(http.StatusNotFound)
		case errors.Is(err, errs.ErrUnauthorized):
			return c.NoContent(http.StatusForbidden)
		default:
			return c.NoContent(http.StatusInternalServerError)
		}
	}

	policy := n.policy
	return n.serve(c, ports.TopicOrderUpdates, func(event ports.OrderEvent) bool {
		if !event.Order.ID().IsEqual(orderID) {
			return false
		}
		return policy.CanSeeOrder(
			actor,
			event.Order.CustomerID(),
			event.Order.DriverID(),
			event.RestaurantOwnerID,
		) == nil
	})
}

// serve upgrades the connection, attaches a subscription, and pumps events
// until either side goes away. The read loop exists only to observe the
// close handshake; inbound frames are discarded.
func (n *Notifier) serve(c echo.Context, topic eventbus.Topic, filter eventbus.Filter[ports.OrderEvent]) error {
	conn, err := n.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		n.logger.Error("upgrade failed", "topic", topic, "error", err)
		return nil
	}
	defer conn.Close()

	sub := n.bus.Subscribe(topic, filter)
	defer sub.Cancel()

	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				sub.Cancel()
				return
			}
		}
	}()

	for event := range sub.Events() {
		if err := conn.WriteJSON(toOrderMessage(event)); err != nil {
			n.logger.Debug("write failed, dropping subscriber", "topic", topic, "error", err)
			return nil
		}
	}

	return nil
}
