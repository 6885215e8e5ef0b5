package restaurant

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// ErrDishIsNotConstructed is returned when a Dish instance was not created
// through NewDish or RestoreDish.
var ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish or RestoreDish")

// Dish is a menu item belonging to one restaurant. It carries a base price
// and zero or more options the customer can select at order time.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name must be non-empty
//   - Base price is non-negative (enforced by kernel.Price)
//   - Option names are unique within the dish
//
// A Dish never re-prices existing orders: order items snapshot their final
// price at creation.
type Dish struct {
	id          kernel.UUID
	name        string
	description string
	price       kernel.Price
	options     []DishOption

	isConstructed bool
}

// NewDish creates a dish with validation.
func NewDish(id kernel.UUID, name, description string, price kernel.Price, options []DishOption) (*Dish, error) {
	d := &Dish{
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setOptions(options),
	); err != nil {
		return nil, err
	}

	d.description = description
	d.price = price
	return d, nil
}

// RestoreDish reconstructs a dish from persistence.
// Options must already have been validated at the storage boundary.
func RestoreDish(id kernel.UUID, name, description string, price kernel.Price, options []DishOption) (*Dish, error) {
	return NewDish(id, name, description, price, options)
}

// Validate ensures the Dish instance was properly constructed.
func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}
	return nil
}

// ID returns the dish's unique identifier.
func (d *Dish) ID() kernel.UUID {
	return d.id
}

// Name returns the dish's display name.
func (d *Dish) Name() string {
	return d.name
}

// Description returns the dish's description text.
func (d *Dish) Description() string {
	return d.description
}

// Price returns the dish's base price.
func (d *Dish) Price() kernel.Price {
	return d.price
}

// Options returns a copy of the dish's option definitions.
func (d *Dish) Options() []DishOption {
	return append([]DishOption(nil), d.options...)
}

// OptionByName looks up an option definition by name.
// Returns false when the name matches no option.
func (d *Dish) OptionByName(name string) (DishOption, bool) {
	for _, option := range d.options {
		if option.Name() == name {
			return option, true
		}
	}
	return DishOption{}, false
}

func (d *Dish) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dish) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("dish name")
	}
	d.name = name
	return nil
}

func (d *Dish) setOptions(options []DishOption) error {
	seen := make(map[string]bool, len(options))
	for _, option := range options {
		if err := option.Validate(); err != nil {
			return err
		}
		if seen[option.Name()] {
			return errs.NewValueIsInvalidErrorWithCause("options",
				errors.New("duplicate option name: "+option.Name()))
		}
		seen[option.Name()] = true
	}
	d.options = append([]DishOption(nil), options...)
	return nil
}
