package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/identity"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckoutCommand(t *testing.T) {
	t.Run("creates a valid command for a guest", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewCheckoutCommand(orderID, "session-1", identity.Guest())

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Equal(t, "session-1", cmd.SessionID())
		assert.True(t, cmd.Actor().IsGuest())
	})

	t.Run("carries an authenticated actor", func(t *testing.T) {
		actor, err := identity.Authenticated(kernel.NewUUID(), false)
		require.NoError(t, err)

		cmd, err := commands.NewCheckoutCommand(kernel.NewUUID(), "session-1", actor)

		require.NoError(t, err)
		assert.False(t, cmd.Actor().IsGuest())
	})

	t.Run("rejects invalid order id", func(t *testing.T) {
		var orderID kernel.UUID
		_, err := commands.NewCheckoutCommand(orderID, "session-1", identity.Guest())
		require.Error(t, err)
	})

	t.Run("rejects empty session id", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(kernel.NewUUID(), "", identity.Guest())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CheckoutCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCheckoutCommandIsNotConstructed)
	})
}
