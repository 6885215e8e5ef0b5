package commands_test

import (
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEditOrderCommand(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		actor := mustActor(t, user.Owner)
		orderID := kernel.NewUUID()

		cmd, err := commands.NewEditOrderCommand(actor, orderID, order.Cooking)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Equal(t, order.Cooking, cmd.Status())
	})

	t.Run("anonymous actor", func(t *testing.T) {
		_, err := commands.NewEditOrderCommand(services.Actor{}, kernel.NewUUID(), order.Cooking)

		require.ErrorIs(t, err, commands.ErrActorIsRequired)
	})

	t.Run("unknown status", func(t *testing.T) {
		actor := mustActor(t, user.Owner)

		_, err := commands.NewEditOrderCommand(actor, kernel.NewUUID(), order.UnknownStatus)

		require.Error(t, err)
	})

	t.Run("invalid order id", func(t *testing.T) {
		actor := mustActor(t, user.Owner)

		_, err := commands.NewEditOrderCommand(actor, kernel.UUID{}, order.Cooking)

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.EditOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrEditOrderCommandIsNotConstructed)
	})
}

func TestNewTakeOrderCommand(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		actor := mustActor(t, user.Delivery)
		orderID := kernel.NewUUID()

		cmd, err := commands.NewTakeOrderCommand(actor, orderID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
	})

	t.Run("anonymous actor", func(t *testing.T) {
		_, err := commands.NewTakeOrderCommand(services.Actor{}, kernel.NewUUID())

		require.ErrorIs(t, err, commands.ErrActorIsRequired)
	})
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		actor := mustActor(t, user.Client)

		_, err := commands.NewCreateOrderCommand(actor, kernel.NewUUID(), kernel.NewUUID(), nil)

		require.ErrorIs(t, err, commands.ErrItemsAreRequired)
	})

	t.Run("success", func(t *testing.T) {
		actor := mustActor(t, user.Client)
		request, err := services.NewItemRequest(kernel.NewUUID(), nil)
		require.NoError(t, err)

		cmd, err := commands.NewCreateOrderCommand(actor, kernel.NewUUID(), kernel.NewUUID(), []services.ItemRequest{request})

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Len(t, cmd.Items(), 1)
	})
}
