package queries

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var ErrGetRestaurantQueryIsNotConstructed = errors.New(
	"GetRestaurantQuery must be created via NewGetRestaurantQuery constructor",
)

// GetRestaurantQuery retrieves a restaurant with its full menu. This is a
// public read and requires no authenticated actor.
type GetRestaurantQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantQuery creates a query to read one restaurant.
func NewGetRestaurantQuery(restaurantID kernel.UUID) (GetRestaurantQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantQuery{}, err
	}

	return GetRestaurantQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRestaurantQueryIsNotConstructed if validation fails.
func (q GetRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantQueryIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant to read.
func (q GetRestaurantQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// ChoiceResponse is one selectable value under a dish option.
type ChoiceResponse struct {
	Name  string `json:"name"`
	Extra int64  `json:"extra,omitempty"`
}

// OptionResponse is one customization option on a dish: either a flat
// surcharge or a list of mutually exclusive choices.
type OptionResponse struct {
	Name    string           `json:"name"`
	Kind    string           `json:"kind"`
	Extra   int64            `json:"extra,omitempty"`
	Choices []ChoiceResponse `json:"choices,omitempty"`
}

// DishResponse is one menu entry.
type DishResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       int64
	Options     []OptionResponse
}

// GetRestaurantQueryResponse represents a restaurant with its menu.
type GetRestaurantQueryResponse struct {
	ID      kernel.UUID
	OwnerID kernel.UUID
	Name    string
	Address string
	Menu    []DishResponse
}
