// Package ports defines the interfaces between the application core and
// infrastructure: repositories, the unit of work, and the event publisher.
// These contracts enable dependency inversion and testability.
package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Plain writes (Add, Update) assume the caller holds the aggregate
// exclusively within its transaction. The guarded writes (UpdateStatus,
// AssignDriver) are compare-and-set operations for the fields that
// concurrent requests race on; they must be atomic at the storage level.
type OrderRepository interface {
	// Add persists a new order aggregate with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus moves the order's stored status from one value to
	// another in a single guarded write. When the stored status is no
	// longer the expected one the write affects nothing and an
	// InvalidTransitionError is returned; the caller must not fall back
	// to a plain Update.
	UpdateStatus(ctx context.Context, id kernel.UUID, from, to order.Status) error

	// AssignDriver records the driver on the order only if no driver is
	// currently assigned. Exactly one of any set of concurrent callers
	// succeeds; the rest receive an AlreadyAssignedError.
	AssignDriver(ctx context.Context, id, driverID kernel.UUID) error

	// GetAllForCustomer retrieves the orders a customer has placed,
	// optionally narrowed to one status.
	GetAllForCustomer(ctx context.Context, customerID kernel.UUID, status *order.Status) ([]*order.Order, error)

	// GetAllForDriver retrieves the orders assigned to a driver,
	// optionally narrowed to one status.
	GetAllForDriver(ctx context.Context, driverID kernel.UUID, status *order.Status) ([]*order.Order, error)

	// GetAllForOwner retrieves the orders placed against any restaurant
	// the owner owns, optionally narrowed to one status.
	GetAllForOwner(ctx context.Context, ownerID kernel.UUID, status *order.Status) ([]*order.Order, error)

	// GetAllCookedUnassigned retrieves cooked orders still waiting for a
	// driver. Used to re-announce them to the driver pool.
	GetAllCookedUnassigned(ctx context.Context) ([]*order.Order, error)
}
