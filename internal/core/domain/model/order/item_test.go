package order_test

import (
	"testing"

	"oorms/internal/core/domain/model/kernel"
	"oorms/internal/core/domain/model/menu"
	"oorms/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMenuItem(t *testing.T, name, price string) *menu.Item {
	t.Helper()

	money, err := kernel.MoneyFromString(price)
	require.NoError(t, err)

	item, err := menu.NewItem(name, money)
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	burger := newMenuItem(t, "House burger", "16.00")

	t.Run("should start REQUESTED and reference the menu item", func(t *testing.T) {
		item, err := order.NewItem(burger)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, order.Requested, item.Status())
		assert.Same(t, burger, item.MenuItem())
		require.NoError(t, item.ID().Validate())
	})

	t.Run("should give each item its own identity", func(t *testing.T) {
		first, _ := order.NewItem(burger)
		second, _ := order.NewItem(burger)

		assert.False(t, first.ID().IsEqual(second.ID()))
	})

	t.Run("should reject a missing menu item", func(t *testing.T) {
		item, err := order.NewItem(nil)

		require.ErrorIs(t, err, menu.ErrItemIsNotConstructed)
		assert.Nil(t, item)
	})

	t.Run("should reject a literal item", func(t *testing.T) {
		require.ErrorIs(t, (&order.Item{}).Validate(), order.ErrItemIsNotConstructed)
	})
}

func TestItem_Lifecycle(t *testing.T) {
	item, err := order.NewItem(newMenuItem(t, "Chicken club", "14.50"))
	require.NoError(t, err)

	type expectation struct {
		status      order.Status
		cancellable bool
		ordered     bool
		served      bool
		inFlight    bool
	}

	steps := []expectation{
		{order.Requested, true, false, false, false},
		{order.Placed, true, true, false, true},
		{order.Cooked, false, true, false, true},
		{order.Ready, false, true, false, true},
		{order.Served, false, true, true, false},
	}

	for i, step := range steps {
		if i > 0 {
			require.NoError(t, item.AdvanceStatus())
		}

		assert.Equal(t, step.status, item.Status())
		assert.Equal(t, step.cancellable, item.CanBeCancelled(), "CanBeCancelled at %s", step.status)
		assert.Equal(t, step.ordered, item.HasBeenOrdered(), "HasBeenOrdered at %s", step.status)
		assert.Equal(t, step.served, item.HasBeenServed(), "HasBeenServed at %s", step.status)
		assert.Equal(t, step.inFlight, item.IsInFlight(), "IsInFlight at %s", step.status)
	}

	t.Run("should refuse to advance a served item", func(t *testing.T) {
		err := item.AdvanceStatus()

		require.Error(t, err)
		assert.Equal(t, order.Served, item.Status())
	})
}
