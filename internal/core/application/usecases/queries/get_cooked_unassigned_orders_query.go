package queries

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var ErrGetCookedUnassignedOrdersQueryIsNotConstructed = errors.New(
	"GetCookedUnassignedOrdersQuery must be created via NewGetCookedUnassignedOrdersQuery constructor",
)

// GetCookedUnassignedOrdersQuery retrieves cooked orders still waiting for
// a driver, for re-announcement to the driver pool.
type GetCookedUnassignedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCookedUnassignedOrdersQuery creates a query to retrieve cooked
// orders without a driver. This is a parameterless query.
func NewGetCookedUnassignedOrdersQuery() GetCookedUnassignedOrdersQuery {
	return GetCookedUnassignedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCookedUnassignedOrdersQueryIsNotConstructed if validation fails.
func (q GetCookedUnassignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCookedUnassignedOrdersQueryIsNotConstructed)
}

// CookedOrderResponse represents one cooked, unassigned order together with
// the owning restaurant's owner for event routing.
type CookedOrderResponse struct {
	Order             OrderResponse
	RestaurantOwnerID kernel.UUID
}
