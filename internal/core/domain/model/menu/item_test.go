package menu_test

import (
	"testing"

	"oorms/internal/core/domain/model/kernel"
	"oorms/internal/core/domain/model/menu"
	"oorms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	price, _ := kernel.MoneyFromString("16.00")

	t.Run("should create item with name and price", func(t *testing.T) {
		item, err := menu.NewItem("House burger", price)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "House burger", item.Name())
		assert.Equal(t, "16.00", item.Price().String())
	})

	t.Run("should trim the name", func(t *testing.T) {
		item, err := menu.NewItem("  Beef Cheek ", price)

		require.NoError(t, err)
		assert.Equal(t, "Beef Cheek", item.Name())
	})

	t.Run("should accept a free item", func(t *testing.T) {
		item, err := menu.NewItem("Bread", kernel.ZeroMoney())

		require.NoError(t, err)
		assert.Equal(t, "0.00", item.Price().String())
	})

	t.Run("should reject a blank name", func(t *testing.T) {
		item, err := menu.NewItem("   ", price)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, item)
	})

	t.Run("should reject an unconstructed price", func(t *testing.T) {
		item, err := menu.NewItem("Roasted Squash", kernel.Money{})

		require.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
		assert.Nil(t, item)
	})

	t.Run("should join every validation error", func(t *testing.T) {
		_, err := menu.NewItem("", kernel.Money{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "value is required: name")
		assert.Contains(t, err.Error(), "money must be created")
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("should reject a literal item", func(t *testing.T) {
		require.ErrorIs(t, (&menu.Item{}).Validate(), menu.ErrItemIsNotConstructed)
	})

	t.Run("should reject a nil item", func(t *testing.T) {
		var item *menu.Item
		require.ErrorIs(t, item.Validate(), menu.ErrItemIsNotConstructed)
	})
}
