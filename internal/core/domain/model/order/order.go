package order

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for the order lifecycle. It belongs to one
// restaurant and one customer, optionally gains a driver, and moves through
// the status state machine until Delivered.
//
// Invariants:
//   - Must have valid order, restaurant, and customer identifiers
//   - Must contain at least one item
//   - Total equals the sum of item prices, fixed at creation
//   - Status only changes through TransitionTo, which enforces the
//     transition table and the acting role
//   - A driver can be assigned at most once
//
// State is mutated only by the order handlers after authorization; no other
// component writes Order fields directly.
type Order struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	customerID   kernel.UUID
	driverID     *kernel.UUID
	items        []*Item
	total        kernel.Price
	status       Status

	isConstructed bool
}

// NewOrder creates a pending order from priced items.
//
// The caller computes item prices and the total beforehand (see the pricing
// service); NewOrder verifies the total matches the items so an aggregate
// can never hold an inconsistent sum.
func NewOrder(id, restaurantID, customerID kernel.UUID, items []*Item, total kernel.Price) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRestaurantID(restaurantID),
		o.setCustomerID(customerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	if err := o.setTotal(total); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its stored status
// and driver assignment. Used by the storage adapter only.
func RestoreOrder(
	id, restaurantID, customerID kernel.UUID,
	items []*Item,
	total kernel.Price,
	status Status,
	driverID *kernel.UUID,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRestaurantID(restaurantID),
		o.setCustomerID(customerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	if err := o.setTotal(total); err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
		id := *driverID
		o.driverID = &id
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// RestaurantID returns the identifier of the restaurant the order was placed against.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// DriverID returns the assigned driver's identifier, nil when unassigned.
func (o *Order) DriverID() *kernel.UUID {
	return o.driverID
}

// Items returns a copy of the order's item list.
func (o *Order) Items() []*Item {
	return append([]*Item(nil), o.items...)
}

// Total returns the order total, fixed at creation.
func (o *Order) Total() kernel.Price {
	return o.total
}

// Status returns the order's current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TransitionTo moves the order to a new status on behalf of the given role.
//
// The transition table is enforced by Status.Transition: only the owner may
// progress Pending->Cooking->Cooked and only a driver may progress
// Cooked->PickedUp->Delivered. On rejection the order's status is unchanged.
func (o *Order) TransitionTo(to Status, by user.Role) error {
	newStatus, err := o.status.Transition(to, by)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignDriver records the driver on the order.
//
// Assignment is permitted only while no driver is set; a second assignment
// fails with AlreadyAssignedError regardless of the driver. The storage
// adapter additionally guards this with a compare-and-set so concurrent
// take-order attempts cannot both win.
func (o *Order) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if o.driverID != nil {
		return errs.NewAlreadyAssignedError(o.id.String())
	}

	o.driverID = &driverID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = append([]*Item(nil), items...)
	return nil
}

func (o *Order) setTotal(total kernel.Price) error {
	sum := kernel.Price{}
	for _, item := range o.items {
		sum = sum.Add(item.Price())
	}
	if !sum.IsEqual(total) {
		return errs.NewValueIsInvalidError("total does not match the sum of item prices")
	}
	o.total = total
	return nil
}
