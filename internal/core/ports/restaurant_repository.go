package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant
// aggregates, including their menus.
type RestaurantRepository interface {
	// Add persists a new restaurant aggregate.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update persists changes to an existing restaurant aggregate,
	// including dish additions and edits.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant aggregate with its full menu.
	// Returns an ObjectNotFoundError when no such restaurant exists.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// GetAllForOwner retrieves every restaurant owned by the given user.
	GetAllForOwner(ctx context.Context, ownerID kernel.UUID) ([]*restaurant.Restaurant, error)
}
