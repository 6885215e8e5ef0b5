package services

import (
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
)

// Action enumerates the operations gated by the authorization policy.
type Action int

const (
	// UnknownAction represents an invalid or undefined action.
	UnknownAction Action = iota

	// SeeRestaurant is the public restaurant/menu read; it requires no role.
	SeeRestaurant

	// CreateRestaurant registers a new restaurant for the acting owner.
	CreateRestaurant

	// EditRestaurant changes a restaurant's name or address.
	EditRestaurant

	// CreateDish adds a dish to a restaurant's menu.
	CreateDish

	// EditDish changes an existing dish.
	EditDish

	// CreateOrder submits a customer's cart.
	CreateOrder

	// GetOrder reads a single order.
	GetOrder

	// GetOrders lists the actor's orders.
	GetOrders

	// EditOrder progresses an order through the status state machine.
	EditOrder

	// TakeOrder assigns the acting driver to an unassigned order.
	TakeOrder

	// SubscribePendingOrders attaches to the per-owner pending-order stream.
	SubscribePendingOrders

	// SubscribeCookedOrders attaches to the driver-wide cooked-order stream.
	SubscribeCookedOrders

	// SubscribeOrderUpdates attaches to a single order's update stream.
	SubscribeOrderUpdates
)

// roleSet describes who may perform an action: nobody in particular
// (public), any authenticated actor, or a member of a fixed role list.
type roleSet struct {
	public bool
	any    bool
	roles  []user.Role
}

// actionRoles is the complete permission table. Admin is absent on purpose:
// Authorize grants Admin everything before consulting the table.
func actionRoles() map[Action]roleSet {
	return map[Action]roleSet{
		SeeRestaurant:          {public: true},
		CreateRestaurant:       {roles: []user.Role{user.Owner}},
		EditRestaurant:         {roles: []user.Role{user.Owner}},
		CreateDish:             {roles: []user.Role{user.Owner}},
		EditDish:               {roles: []user.Role{user.Owner}},
		CreateOrder:            {roles: []user.Role{user.Client}},
		GetOrder:               {any: true},
		GetOrders:              {any: true},
		EditOrder:              {roles: []user.Role{user.Owner, user.Delivery}},
		TakeOrder:              {roles: []user.Role{user.Delivery}},
		SubscribePendingOrders: {roles: []user.Role{user.Owner}},
		SubscribeCookedOrders:  {roles: []user.Role{user.Delivery}},
		SubscribeOrderUpdates:  {any: true},
	}
}

// Actor is the authenticated identity an operation runs on behalf of. The
// zero value is the anonymous actor.
type Actor struct {
	id   kernel.UUID
	role user.Role
}

// NewActor creates an authenticated actor.
func NewActor(id kernel.UUID, role user.Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// ID returns the actor's user identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() user.Role {
	return a.role
}

// IsAuthenticated reports whether the actor carries a valid identity.
func (a Actor) IsAuthenticated() bool {
	return a.id.Validate() == nil && a.role.Validate() == nil
}

// AuthorizationPolicy decides whether an actor may perform an action,
// optionally scoped to a concrete resource. It is a pure decision
// function with no side effects; every denial is an UnauthorizedError
// the caller must surface, never swallow.
//
// Role-level rules, evaluated in order:
//  1. A public action is allowed for anyone, authenticated or not.
//  2. Admin is allowed unconditionally.
//  3. An action open to any role is allowed for every authenticated actor.
//  4. Otherwise the actor's role must be in the action's role set.
//
// Resource-scoped actions additionally pass an ownership or participation
// check (CanActOnRestaurant, CanActOnOrder) on top of the role check.
type AuthorizationPolicy struct{}

// NewAuthorizationPolicy creates a new AuthorizationPolicy instance.
func NewAuthorizationPolicy() AuthorizationPolicy {
	return AuthorizationPolicy{}
}

// Authorize performs the role-level check for an action.
func (AuthorizationPolicy) Authorize(actor Actor, action Action) error {
	set, ok := actionRoles()[action]
	if !ok {
		return errs.NewUnauthorizedError("unknown action")
	}

	if set.public {
		return nil
	}

	if !actor.IsAuthenticated() {
		return errs.NewUnauthorizedError("authentication required")
	}

	if actor.role == user.Admin || set.any {
		return nil
	}

	for _, role := range set.roles {
		if actor.role == role {
			return nil
		}
	}

	return errs.NewUnauthorizedError("role not permitted")
}

// CanActOnRestaurant layers the ownership check over the role check:
// only the restaurant's owner (or Admin) may act on it.
func (p AuthorizationPolicy) CanActOnRestaurant(actor Actor, action Action, rest *restaurant.Restaurant) error {
	if err := p.Authorize(actor, action); err != nil {
		return err
	}

	if actor.role == user.Admin {
		return nil
	}

	if !rest.IsOwnedBy(actor.id) {
		return errs.NewUnauthorizedError("not authorized for this resource")
	}

	return nil
}

// CanSeeOrder is the order participation check on raw identifiers, for
// read paths that have the order's references but not the full aggregate.
// The same predicate as CanActOnOrder's view rule: customer, assigned
// driver, or restaurant owner, with Admin bypassing.
func (p AuthorizationPolicy) CanSeeOrder(actor Actor, customerID kernel.UUID, driverID *kernel.UUID, ownerID kernel.UUID) error {
	if err := p.Authorize(actor, GetOrder); err != nil {
		return err
	}

	if actor.role == user.Admin {
		return nil
	}

	switch actor.role {
	case user.Client:
		if customerID.IsEqual(actor.id) {
			return nil
		}
	case user.Delivery:
		if driverID != nil && driverID.IsEqual(actor.id) {
			return nil
		}
	case user.Owner:
		if ownerID.IsEqual(actor.id) {
			return nil
		}
	}

	return errs.NewUnauthorizedError("not authorized for this resource")
}

// CanActOnOrder layers the participation check over the role check.
//
// A Client may act only on orders where they are the customer; a driver
// only on orders where they are the assigned driver, except TakeOrder,
// which instead requires the order to be unassigned; an Owner only on
// orders placed against their own restaurant, identified by
// restaurantOwnerID. Admin bypasses the participation check.
//
// The check runs against the order's pre-mutation state: the caller
// authorizes first and mutates after.
func (p AuthorizationPolicy) CanActOnOrder(actor Actor, action Action, o *order.Order, restaurantOwnerID kernel.UUID) error {
	if err := p.Authorize(actor, action); err != nil {
		return err
	}

	if actor.role == user.Admin {
		return nil
	}

	switch actor.role {
	case user.Client:
		if o.CustomerID().IsEqual(actor.id) {
			return nil
		}
	case user.Delivery:
		if action == TakeOrder {
			if o.DriverID() == nil {
				return nil
			}
			return errs.NewAlreadyAssignedError(o.ID().String())
		}
		if o.DriverID() != nil && o.DriverID().IsEqual(actor.id) {
			return nil
		}
	case user.Owner:
		if restaurantOwnerID.IsEqual(actor.id) {
			return nil
		}
	}

	return errs.NewUnauthorizedError("not authorized for this resource")
}
