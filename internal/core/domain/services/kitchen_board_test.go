package services_test

import (
	"testing"

	"oorms/internal/core/domain/model/kernel"
	"oorms/internal/core/domain/model/menu"
	"oorms/internal/core/domain/model/order"
	"oorms/internal/core/domain/model/restaurant"
	"oorms/internal/core/domain/services"
	"oorms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRestaurant(t *testing.T) *restaurant.Restaurant {
	t.Helper()

	loc, err := kernel.NewLocation(20, 20)
	require.NoError(t, err)
	layout := []restaurant.TableLayout{
		{Seats: 2, Location: loc},
		{Seats: 4, Location: loc},
		{Seats: 3, Location: loc},
	}

	var items []*menu.Item
	for _, m := range []struct{ name, price string }{
		{"House burger", "16.00"},
		{"Chicken club", "14.50"},
	} {
		price, err := kernel.MoneyFromString(m.price)
		require.NoError(t, err)
		item, err := menu.NewItem(m.name, price)
		require.NoError(t, err)
		items = append(items, item)
	}

	r, err := restaurant.NewRestaurant(layout, items)
	require.NoError(t, err)
	return r
}

func orderAt(t *testing.T, r *restaurant.Restaurant, table, seat int) *order.Order {
	t.Helper()
	tbl, err := r.Table(table)
	require.NoError(t, err)
	o, err := tbl.OrderFor(seat)
	require.NoError(t, err)
	return o
}

func addItem(t *testing.T, r *restaurant.Restaurant, o *order.Order, menuIndex int) *order.Item {
	t.Helper()
	item, err := o.AddItem(r.Menu()[menuIndex])
	require.NoError(t, err)
	return item
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		status order.Status
		want   string
	}{
		{order.Placed, services.ActionStartCooking},
		{order.Cooked, services.ActionMarkAsReady},
		{order.Ready, services.ActionMarkAsServed},
	}
	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			got, err := services.ActionFor(tt.status)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("should have no action outside the kitchen", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Requested, order.Served} {
			_, err := services.ActionFor(status)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, status.String())
		}
	})
}

func TestKitchenBoard_Sections(t *testing.T) {
	board := services.NewKitchenBoard()

	t.Run("should be empty for an idle restaurant", func(t *testing.T) {
		sections, err := board.Sections(newRestaurant(t))

		require.NoError(t, err)
		assert.NotNil(t, sections)
		assert.Empty(t, sections)
	})

	t.Run("should list in-flight items by table, seat and item order", func(t *testing.T) {
		r := newRestaurant(t)

		o21 := orderAt(t, r, 2, 1)
		burger := addItem(t, r, o21, 0)
		club := addItem(t, r, o21, 1)
		require.NoError(t, o21.PlaceNewOrders())
		require.NoError(t, burger.AdvanceStatus())

		o20 := orderAt(t, r, 2, 0)
		first := addItem(t, r, o20, 1)
		require.NoError(t, o20.PlaceNewOrders())
		addItem(t, r, o20, 0) // requested only

		o00 := orderAt(t, r, 0, 0)
		served := addItem(t, r, o00, 0)
		require.NoError(t, o00.PlaceNewOrders())
		for range 3 {
			require.NoError(t, served.AdvanceStatus())
		}

		sections, err := board.Sections(r)

		require.NoError(t, err)
		require.Len(t, sections, 1)
		assert.Equal(t, 2, sections[0].Table)
		assert.Equal(t, "Table 2", sections[0].Title())
		assert.Equal(t, []services.KitchenTicket{
			{Table: 2, Seat: 0, Item: first, Action: services.ActionStartCooking},
			{Table: 2, Seat: 1, Item: burger, Action: services.ActionMarkAsReady},
			{Table: 2, Seat: 1, Item: club, Action: services.ActionStartCooking},
		}, sections[0].Tickets)
	})

	t.Run("should keep table order across sections", func(t *testing.T) {
		r := newRestaurant(t)
		for _, table := range []int{2, 0} {
			o := orderAt(t, r, table, 0)
			addItem(t, r, o, 0)
			require.NoError(t, o.PlaceNewOrders())
		}

		sections, err := board.Sections(r)

		require.NoError(t, err)
		require.Len(t, sections, 2)
		assert.Equal(t, 0, sections[0].Table)
		assert.Equal(t, 2, sections[1].Table)
	})

	t.Run("should reject a restaurant that bypassed its constructor", func(t *testing.T) {
		_, err := board.Sections(&restaurant.Restaurant{})

		require.ErrorIs(t, err, restaurant.ErrRestaurantIsNotConstructed)
	})
}

func TestKitchenBoard_Backlog(t *testing.T) {
	board := services.NewKitchenBoard()
	r := newRestaurant(t)

	o := orderAt(t, r, 1, 3)
	cooking := addItem(t, r, o, 0)
	addItem(t, r, o, 1)
	require.NoError(t, o.PlaceNewOrders())
	require.NoError(t, cooking.AdvanceStatus())
	addItem(t, r, o, 1)

	backlog, err := board.Backlog(r)

	require.NoError(t, err)
	assert.Equal(t, map[order.Status]int{
		order.Placed: 1,
		order.Cooked: 1,
		order.Ready:  0,
	}, backlog)
}
