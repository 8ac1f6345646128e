package queries_test

import (
	"context"
	"errors"
	"testing"

	"oorms/internal/core/application/usecases/queries"
	"oorms/internal/core/domain/model/kernel"
	"oorms/internal/core/domain/model/menu"
	"oorms/internal/core/domain/model/order"
	"oorms/internal/core/domain/model/restaurant"
	"oorms/internal/core/domain/services"
	"oorms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockExecutor runs the closure inline unless told to fail.
type MockExecutor struct{ mock.Mock }

func (m *MockExecutor) Do(ctx context.Context, fn func() error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn()
}

func inlineExecutor() *MockExecutor {
	executor := new(MockExecutor)
	executor.On("Do", mock.Anything).Return(nil)
	return executor
}

func newRestaurant(t *testing.T) *restaurant.Restaurant {
	t.Helper()

	var layout []restaurant.TableLayout
	for i, seats := range []int{2, 4} {
		loc, err := kernel.NewLocation(kernel.Coordinate(20+250*i), 20)
		require.NoError(t, err)
		layout = append(layout, restaurant.TableLayout{Seats: seats, Location: loc})
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

func seatOrder(t *testing.T, r *restaurant.Restaurant, table, seat int) *order.Order {
	t.Helper()
	tbl, err := r.Table(table)
	require.NoError(t, err)
	o, err := tbl.OrderFor(seat)
	require.NoError(t, err)
	return o
}

func TestGetFloorPlanQueryHandler_Handle(t *testing.T) {
	t.Run("should describe every table", func(t *testing.T) {
		r := newRestaurant(t)
		o := seatOrder(t, r, 1, 2)
		_, err := o.AddItem(r.Menu()[0])
		require.NoError(t, err)
		executor := inlineExecutor()

		plan, err := queries.NewGetFloorPlanQueryHandler(executor, r).
			Handle(t.Context(), queries.NewGetFloorPlanQuery())

		require.NoError(t, err)
		require.Len(t, plan.Tables, 2)
		assert.Equal(t, 0, plan.Tables[0].Number)
		assert.Equal(t, 2, plan.Tables[0].Seats)
		assert.Empty(t, plan.Tables[0].OccupiedSeats)
		assert.Equal(t, 1, plan.Tables[1].Number)
		assert.Equal(t, []int{2}, plan.Tables[1].OccupiedSeats)
		assert.False(t, plan.Tables[1].HasActiveOrders)
		assert.Equal(t, kernel.Coordinate(270), plan.Tables[1].Location.X())
		executor.AssertNumberOfCalls(t, "Do", 1)

		require.NoError(t, o.PlaceNewOrders())
		plan, err = queries.NewGetFloorPlanQueryHandler(executor, r).
			Handle(t.Context(), queries.NewGetFloorPlanQuery())
		require.NoError(t, err)
		assert.True(t, plan.Tables[1].HasActiveOrders)
	})

	t.Run("should reject a query that bypassed its constructor", func(t *testing.T) {
		executor := new(MockExecutor)

		_, err := queries.NewGetFloorPlanQueryHandler(executor, newRestaurant(t)).
			Handle(t.Context(), queries.GetFloorPlanQuery{})

		require.ErrorIs(t, err, queries.ErrGetFloorPlanQueryIsNotConstructed)
		executor.AssertNotCalled(t, "Do", mock.Anything)
	})

	t.Run("should report executor failures", func(t *testing.T) {
		stopped := errors.New("loop is stopped")
		executor := new(MockExecutor)
		executor.On("Do", mock.Anything).Return(stopped)

		_, err := queries.NewGetFloorPlanQueryHandler(executor, newRestaurant(t)).
			Handle(t.Context(), queries.NewGetFloorPlanQuery())

		require.ErrorIs(t, err, stopped)
	})
}

func TestNewGetSeatOrderQuery(t *testing.T) {
	t.Run("should keep both numbers", func(t *testing.T) {
		q, err := queries.NewGetSeatOrderQuery(2, 4)

		require.NoError(t, err)
		require.NoError(t, q.Validate())
		assert.Equal(t, 2, q.Table())
		assert.Equal(t, 4, q.Seat())
	})

	t.Run("should reject negative numbers", func(t *testing.T) {
		_, err := queries.NewGetSeatOrderQuery(-1, -1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "table")
		assert.Contains(t, err.Error(), "seat")
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		require.ErrorIs(t, queries.GetSeatOrderQuery{}.Validate(), queries.ErrGetSeatOrderQueryIsNotConstructed)
	})
}

func TestGetSeatOrderQueryHandler_Handle(t *testing.T) {
	r := newRestaurant(t)
	o := seatOrder(t, r, 0, 1)
	burger, err := o.AddItem(r.Menu()[0])
	require.NoError(t, err)
	club, err := o.AddItem(r.Menu()[1])
	require.NoError(t, err)
	require.NoError(t, o.PlaceNewOrders())
	require.NoError(t, burger.AdvanceStatus())
	handler := queries.NewGetSeatOrderQueryHandler(inlineExecutor(), r)

	t.Run("should list the lines and the running total", func(t *testing.T) {
		q, err := queries.NewGetSeatOrderQuery(0, 1)
		require.NoError(t, err)

		result, err := handler.Handle(t.Context(), q)

		require.NoError(t, err)
		assert.Equal(t, 0, result.Table)
		assert.Equal(t, 1, result.Seat)
		assert.Equal(t, "30.50", result.Total.String())
		require.Len(t, result.Lines, 2)
		assert.Equal(t, queries.SeatOrderLine{
			ID:          burger.ID(),
			Name:        "House burger",
			Price:       r.Menu()[0].Price(),
			Status:      order.Cooked,
			Cancellable: false,
		}, result.Lines[0])
		assert.True(t, result.Lines[1].ID.IsEqual(club.ID()))
		assert.True(t, result.Lines[1].Cancellable)
	})

	t.Run("should return an empty order for an empty seat", func(t *testing.T) {
		q, err := queries.NewGetSeatOrderQuery(1, 3)
		require.NoError(t, err)

		result, err := handler.Handle(t.Context(), q)

		require.NoError(t, err)
		assert.Empty(t, result.Lines)
		assert.Equal(t, "0.00", result.Total.String())
	})

	t.Run("should report unknown tables and seats", func(t *testing.T) {
		for _, c := range []struct{ table, seat int }{{2, 0}, {0, 2}} {
			q, err := queries.NewGetSeatOrderQuery(c.table, c.seat)
			require.NoError(t, err)

			_, err = handler.Handle(t.Context(), q)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})
}

func TestGetKitchenBoardQueryHandler_Handle(t *testing.T) {
	r := newRestaurant(t)
	handler := queries.NewGetKitchenBoardQueryHandler(inlineExecutor(), r)

	board, err := handler.Handle(t.Context(), queries.NewGetKitchenBoardQuery())
	require.NoError(t, err)
	assert.Empty(t, board.Sections)

	o := seatOrder(t, r, 1, 0)
	item, err := o.AddItem(r.Menu()[1])
	require.NoError(t, err)
	require.NoError(t, o.PlaceNewOrders())

	board, err = handler.Handle(t.Context(), queries.NewGetKitchenBoardQuery())

	require.NoError(t, err)
	require.Len(t, board.Sections, 1)
	assert.Equal(t, "Table 1", board.Sections[0].Title)
	assert.Equal(t, []queries.KitchenBoardTicket{{
		ItemID: item.ID(),
		Table:  1,
		Seat:   0,
		Name:   "Chicken club",
		Status: order.Placed,
		Action: services.ActionStartCooking,
	}}, board.Sections[0].Tickets)

	_, err = handler.Handle(t.Context(), queries.GetKitchenBoardQuery{})
	require.ErrorIs(t, err, queries.ErrGetKitchenBoardQueryIsNotConstructed)
}
