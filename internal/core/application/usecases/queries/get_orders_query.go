package queries

import (
	"errors"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/services"
	"eats/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists the actor's orders, scoped by role: a customer sees
// the orders they placed, a driver the orders assigned to them, an owner
// the orders against any of their restaurants, and an admin everything.
// An optional status narrows the result.
type GetOrdersQuery struct {
	actor  services.Actor
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to list the actor's orders. Pass a nil
// status to list every status.
func NewGetOrdersQuery(actor services.Actor, status *order.Status) (GetOrdersQuery, error) {
	if !actor.IsAuthenticated() {
		return GetOrdersQuery{}, ErrActorIsRequired
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	query := GetOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}
	if status != nil {
		s := *status
		query.status = &s
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Actor returns the authenticated identity performing the read.
func (q GetOrdersQuery) Actor() services.Actor {
	return q.actor
}

// Status returns the optional status filter, nil when unfiltered.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}
