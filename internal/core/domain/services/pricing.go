package services

import (
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"
)

// ItemRequest is one line of a customer's cart: a dish and the customer's
// option selections, not yet priced.
type ItemRequest struct {
	dishID     kernel.UUID
	selections []order.Selection
}

// NewItemRequest creates a cart line for the given dish.
func NewItemRequest(dishID kernel.UUID, selections []order.Selection) (ItemRequest, error) {
	if err := dishID.Validate(); err != nil {
		return ItemRequest{}, err
	}
	return ItemRequest{
		dishID:     dishID,
		selections: append([]order.Selection(nil), selections...),
	}, nil
}

// DishID returns the requested dish's identifier.
func (r ItemRequest) DishID() kernel.UUID {
	return r.dishID
}

// Selections returns a copy of the customer's option selections.
func (r ItemRequest) Selections() []order.Selection {
	return append([]order.Selection(nil), r.selections...)
}

// PricingEngine is a domain service that prices a cart against a restaurant's
// menu. It is pure: it touches no storage and its output depends only on the
// menu and the requested items.
//
// Pricing rules per item:
//   - The dish must be on the menu; an absent dish fails the whole cart.
//   - Each selection is matched by option name against the dish's options.
//     An unmatched selection adds nothing and does not error.
//   - A flat-surcharge option adds its surcharge once, regardless of any
//     choice name carried on the selection.
//   - A choice-list option adds the chosen choice's surcharge; an unmatched
//     or missing choice name degrades silently to the base price.
//
// The silent degradation of unmatched names is intentional: the menu may
// have been edited between the customer loading it and submitting the cart,
// and a stale selection should not block the order.
type PricingEngine struct{}

// NewPricingEngine creates a new PricingEngine instance.
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// PriceOrder prices every requested item against the restaurant's menu and
// returns the priced order items together with their total.
//
// Returns an ObjectNotFoundError when a requested dish is not on the menu;
// in that case no items are returned and the caller must reject the whole
// cart. Partial orders are never produced.
func (PricingEngine) PriceOrder(rest *restaurant.Restaurant, requests []ItemRequest) ([]*order.Item, kernel.Price, error) {
	if err := rest.Validate(); err != nil {
		return nil, kernel.Price{}, err
	}
	if len(requests) == 0 {
		return nil, kernel.Price{}, errs.NewValueIsRequiredError("items")
	}

	items := make([]*order.Item, 0, len(requests))
	var total kernel.Price

	for _, request := range requests {
		dish, ok := rest.DishByID(request.dishID)
		if !ok {
			return nil, kernel.Price{}, errs.NewObjectNotFoundError("dish", request.dishID)
		}

		price := priceItem(dish, request.selections)

		item, err := order.NewItem(kernel.NewUUID(), dish.ID(), price, request.selections)
		if err != nil {
			return nil, kernel.Price{}, err
		}

		items = append(items, item)
		total = total.Add(price)
	}

	return items, total, nil
}

func priceItem(dish *restaurant.Dish, selections []order.Selection) kernel.Price {
	price := dish.Price()

	for _, selection := range selections {
		option, ok := dish.OptionByName(selection.OptionName())
		if !ok {
			continue
		}

		switch option.Kind() {
		case restaurant.FlatSurcharge:
			price = price.Add(option.Extra())
		case restaurant.ChoiceList:
			choice, ok := option.ChoiceByName(selection.ChoiceName())
			if !ok {
				continue
			}
			price = price.Add(choice.Extra())
		}
	}

	return price
}
