package order_test

import (
	"testing"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPrice(t *testing.T, amount int64) kernel.Price {
	t.Helper()
	p, err := kernel.NewPrice(amount)
	require.NoError(t, err)
	return p
}

func makeItem(t *testing.T, amount int64, selections ...order.Selection) *order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), mustPrice(t, amount), selections)
	require.NoError(t, err)
	return item
}

func makeOrder(t *testing.T) *order.Order {
	t.Helper()
	items := []*order.Item{makeItem(t, 1200), makeItem(t, 300)}
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), items, mustPrice(t, 1500))
	require.NoError(t, err)
	return o
}

func TestNewSelection(t *testing.T) {
	t.Run("with choice", func(t *testing.T) {
		s, err := order.NewSelection("Spice Level", "Hot")

		require.NoError(t, err)
		assert.Equal(t, "Spice Level", s.OptionName())
		assert.Equal(t, "Hot", s.ChoiceName())
	})

	t.Run("without choice", func(t *testing.T) {
		s, err := order.NewSelection("Extra Cheese", "")

		require.NoError(t, err)
		assert.Empty(t, s.ChoiceName())
	})

	t.Run("empty option name", func(t *testing.T) {
		_, err := order.NewSelection("", "Hot")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewItem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id := kernel.NewUUID()
		dishID := kernel.NewUUID()
		sel, err := order.NewSelection("Size", "Large")
		require.NoError(t, err)

		item, err := order.NewItem(id, dishID, mustPrice(t, 990), []order.Selection{sel})

		require.NoError(t, err)
		assert.True(t, item.ID().IsEqual(id))
		assert.True(t, item.DishID().IsEqual(dishID))
		assert.Equal(t, int64(990), item.Price().Amount())
		assert.Len(t, item.Selections(), 1)
	})

	t.Run("invalid dish id", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), kernel.UUID{}, mustPrice(t, 990), nil)

		require.Error(t, err)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id := kernel.NewUUID()
		restaurantID := kernel.NewUUID()
		customerID := kernel.NewUUID()
		items := []*order.Item{makeItem(t, 700), makeItem(t, 800)}

		o, err := order.NewOrder(id, restaurantID, customerID, items, mustPrice(t, 1500))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.RestaurantID().IsEqual(restaurantID))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.DriverID())
		assert.Equal(t, int64(1500), o.Total().Amount())
		assert.Len(t, o.Items(), 2)
	})

	t.Run("total does not match items", func(t *testing.T) {
		items := []*order.Item{makeItem(t, 700)}

		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), items, mustPrice(t, 699))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("no items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, mustPrice(t, 0))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid restaurant id", func(t *testing.T) {
		items := []*order.Item{makeItem(t, 700)}

		_, err := order.NewOrder(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), items, mustPrice(t, 700))

		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("with driver and stored status", func(t *testing.T) {
		driverID := kernel.NewUUID()
		items := []*order.Item{makeItem(t, 2500)}

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			items, mustPrice(t, 2500), order.PickedUp, &driverID,
		)

		require.NoError(t, err)
		assert.Equal(t, order.PickedUp, o.Status())
		require.NotNil(t, o.DriverID())
		assert.True(t, o.DriverID().IsEqual(driverID))
	})

	t.Run("without driver", func(t *testing.T) {
		items := []*order.Item{makeItem(t, 2500)}

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			items, mustPrice(t, 2500), order.Cooking, nil,
		)

		require.NoError(t, err)
		assert.Nil(t, o.DriverID())
	})

	t.Run("invalid status", func(t *testing.T) {
		items := []*order.Item{makeItem(t, 2500)}

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			items, mustPrice(t, 2500), order.UnknownStatus, nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("owner accepts pending order", func(t *testing.T) {
		o := makeOrder(t)

		err := o.TransitionTo(order.Cooking, user.Owner)

		require.NoError(t, err)
		assert.Equal(t, order.Cooking, o.Status())
	})

	t.Run("rejection leaves status unchanged", func(t *testing.T) {
		o := makeOrder(t)

		err := o.TransitionTo(order.Delivered, user.Delivery)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("full lifecycle", func(t *testing.T) {
		o := makeOrder(t)

		require.NoError(t, o.TransitionTo(order.Cooking, user.Owner))
		require.NoError(t, o.TransitionTo(order.Cooked, user.Owner))
		require.NoError(t, o.TransitionTo(order.PickedUp, user.Delivery))
		require.NoError(t, o.TransitionTo(order.Delivered, user.Delivery))

		assert.Equal(t, order.Delivered, o.Status())
		assert.True(t, o.Status().IsTerminal())
	})
}

func TestOrder_AssignDriver(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		o := makeOrder(t)
		driverID := kernel.NewUUID()

		err := o.AssignDriver(driverID)

		require.NoError(t, err)
		require.NotNil(t, o.DriverID())
		assert.True(t, o.DriverID().IsEqual(driverID))
	})

	t.Run("second assignment fails", func(t *testing.T) {
		o := makeOrder(t)
		require.NoError(t, o.AssignDriver(kernel.NewUUID()))
		first := *o.DriverID()

		err := o.AssignDriver(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrAlreadyAssigned)
		assert.True(t, o.DriverID().IsEqual(first))
	})

	t.Run("invalid driver id", func(t *testing.T) {
		o := makeOrder(t)

		err := o.AssignDriver(kernel.UUID{})

		require.Error(t, err)
		assert.Nil(t, o.DriverID())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed order is valid", func(t *testing.T) {
		require.NoError(t, makeOrder(t).Validate())
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil is invalid", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	a := makeOrder(t)
	b := makeOrder(t)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}
