package order

import (
	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// Selection is a customer's pick of one dish option, optionally naming a
// choice under that option. Selections are matched by name against the
// dish's option definitions at order time; unmatched names are ignored by
// pricing rather than rejected.
type Selection struct {
	optionName string
	choiceName string
}

// NewSelection creates a selection of an option, with choiceName empty when
// the customer picked no choice (or the option is a flat surcharge).
func NewSelection(optionName, choiceName string) (Selection, error) {
	if optionName == "" {
		return Selection{}, errs.NewValueIsRequiredError("option name")
	}
	return Selection{
		optionName: optionName,
		choiceName: choiceName,
	}, nil
}

// OptionName returns the selected option's name.
func (s Selection) OptionName() string {
	return s.optionName
}

// ChoiceName returns the selected choice's name, empty when none was picked.
func (s Selection) ChoiceName() string {
	return s.choiceName
}

// Item is one line of an order. It references a dish and snapshots the final
// price computed at order time; later edits to the dish never re-price it.
// Items are owned by their order and share its lifecycle.
type Item struct {
	id         kernel.UUID
	dishID     kernel.UUID
	price      kernel.Price
	selections []Selection
}

// NewItem creates an order item with its price snapshot.
func NewItem(id, dishID kernel.UUID, price kernel.Price, selections []Selection) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := dishID.Validate(); err != nil {
		return nil, err
	}

	return &Item{
		id:         id,
		dishID:     dishID,
		price:      price,
		selections: append([]Selection(nil), selections...),
	}, nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// DishID returns the identifier of the referenced dish.
func (i *Item) DishID() kernel.UUID {
	return i.dishID
}

// Price returns the item's final price as computed at order time.
func (i *Item) Price() kernel.Price {
	return i.price
}

// Selections returns a copy of the customer's option selections.
func (i *Item) Selections() []Selection {
	return append([]Selection(nil), i.selections...)
}
