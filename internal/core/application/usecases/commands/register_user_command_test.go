package commands_test

import (
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterUserCommand(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id := kernel.NewUUID()
		cmd, err := commands.NewRegisterUserCommand(id, "owner@eats.dev", "long enough", user.Owner)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.UserID().IsEqual(id))
		assert.Equal(t, "owner@eats.dev", cmd.Email())
		assert.Equal(t, user.Owner, cmd.Role())
	})

	t.Run("email is trimmed", func(t *testing.T) {
		cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "  o@eats.dev ", "long enough", user.Client)

		require.NoError(t, err)
		assert.Equal(t, "o@eats.dev", cmd.Email())
	})

	t.Run("missing at sign", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "not-an-email", "long enough", user.Client)

		require.ErrorIs(t, err, commands.ErrEmailIsRequired)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "c@eats.dev", "short", user.Client)

		require.ErrorIs(t, err, commands.ErrPasswordIsTooShort)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "c@eats.dev", "long enough", user.UnknownRole)

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.RegisterUserCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrRegisterUserCommandIsNotConstructed)
	})
}
