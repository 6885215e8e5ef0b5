package restaurant

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

var (
	// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was
	// not created through NewRestaurant or RestoreRestaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant or RestoreRestaurant")

	// ErrDuplicateDish is returned by AddDish when a dish with the same ID
	// is already on the menu.
	ErrDuplicateDish = errors.New("dish already on the menu")
)

// Restaurant is the aggregate root for a restaurant and its menu.
// It is owned by exactly one user; the owner ID is a weak reference kept
// for authorization checks and is never used to mutate the owner.
//
// Invariants:
//   - Must have a valid unique identifier and owner identifier
//   - Name must be non-empty
//   - Dish identifiers are unique within the menu
type Restaurant struct {
	id      kernel.UUID
	ownerID kernel.UUID
	name    string
	address string
	menu    []*Dish

	isConstructed bool
}

// NewRestaurant creates a restaurant with an empty menu.
func NewRestaurant(id, ownerID kernel.UUID, name, address string) (*Restaurant, error) {
	r := &Restaurant{
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOwnerID(ownerID),
		r.setName(name),
	); err != nil {
		return nil, err
	}

	r.address = address
	return r, nil
}

// RestoreRestaurant reconstructs a restaurant and its menu from persistence.
func RestoreRestaurant(id, ownerID kernel.UUID, name, address string, menu []*Dish) (*Restaurant, error) {
	r, err := NewRestaurant(id, ownerID, name, address)
	if err != nil {
		return nil, err
	}

	for _, dish := range menu {
		if err = r.AddDish(dish); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Validate ensures the Restaurant instance was properly constructed.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// IsEqual compares two restaurants by their unique identifiers.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// OwnerID returns the owning user's identifier.
func (r *Restaurant) OwnerID() kernel.UUID {
	return r.ownerID
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Address returns the restaurant's address.
func (r *Restaurant) Address() string {
	return r.address
}

// Menu returns a copy of the restaurant's dish list.
func (r *Restaurant) Menu() []*Dish {
	return append([]*Dish(nil), r.menu...)
}

// DishByID looks up a dish on the menu by its identifier.
// Returns false when the menu contains no such dish.
func (r *Restaurant) DishByID(id kernel.UUID) (*Dish, bool) {
	for _, dish := range r.menu {
		if dish.ID().IsEqual(id) {
			return dish, true
		}
	}
	return nil, false
}

// IsOwnedBy reports whether the given user owns this restaurant.
func (r *Restaurant) IsOwnedBy(userID kernel.UUID) bool {
	return r.ownerID.IsEqual(userID)
}

// Rename updates the restaurant's name and address.
func (r *Restaurant) Rename(name, address string) error {
	if err := r.setName(name); err != nil {
		return err
	}
	r.address = address
	return nil
}

// AddDish appends a dish to the menu, rejecting duplicate identifiers.
func (r *Restaurant) AddDish(dish *Dish) error {
	if err := dish.Validate(); err != nil {
		return err
	}
	if _, exists := r.DishByID(dish.ID()); exists {
		return ErrDuplicateDish
	}
	r.menu = append(r.menu, dish)
	return nil
}

// ReplaceDish swaps the menu entry with the same ID for the given dish.
// Returns ObjectNotFoundError when the dish is not on the menu.
func (r *Restaurant) ReplaceDish(dish *Dish) error {
	if err := dish.Validate(); err != nil {
		return err
	}
	for i, existing := range r.menu {
		if existing.ID().IsEqual(dish.ID()) {
			r.menu[i] = dish
			return nil
		}
	}
	return errs.NewObjectNotFoundError("dish", dish.ID().String())
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	r.ownerID = ownerID
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("restaurant name")
	}
	r.name = name
	return nil
}
