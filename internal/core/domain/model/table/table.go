package table

import (
	"errors"

	"oorms/internal/core/domain/model/kernel"
	"oorms/internal/core/domain/model/order"
	"oorms/internal/pkg/errs"
	"oorms/internal/pkg/guard"
)

// MaxSeats bounds the seat count of a single table.
const MaxSeats = 64

// ErrTableIsNotConstructed is returned when a Table was not built by NewTable.
var ErrTableIsNotConstructed = errors.New("Table must be created via NewTable constructor")

// Table is a dining table. Orders are created with the table and live as long as it does.
//
// Example:
//
//	loc, _ := kernel.NewLocation(20, 20)
//	t, err := table.NewTable(6, loc)
//	if err != nil {
//	    return err
//	}
//	o, _ := t.OrderFor(0)
type Table struct {
	location kernel.Location
	orders   []*order.Order
	guard    guard.ConstructorGuard
}

// NewTable creates a table with seats empty orders.
func NewTable(seats int, location kernel.Location) (*Table, error) {
	t := &Table{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		t.setSeats(seats),
		t.setLocation(location),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate ensures the table was created through NewTable.
func (t *Table) Validate() error {
	if t == nil {
		return ErrTableIsNotConstructed
	}
	return t.guard.Validate(ErrTableIsNotConstructed)
}

// Seats returns the number of seats.
func (t *Table) Seats() int {
	return len(t.orders)
}

// Location returns where the table stands.
func (t *Table) Location() kernel.Location {
	return t.location
}

// Orders returns the per-seat orders indexed by seat number.
func (t *Table) Orders() []*order.Order {
	orders := make([]*order.Order, len(t.orders))
	copy(orders, t.orders)
	return orders
}

// OrderFor returns the order of seat.
//
// Returns *errs.ValueIsOutOfRangeError when seat is not in [0, Seats()).
func (t *Table) OrderFor(seat int) (*order.Order, error) {
	if err := t.checkSeat(seat); err != nil {
		return nil, err
	}
	return t.orders[seat], nil
}

// HasOrderFor reports whether seat has anything in its order, ordered or not.
func (t *Table) HasOrderFor(seat int) (bool, error) {
	o, err := t.OrderFor(seat)
	if err != nil {
		return false, err
	}
	return o.Len() > 0, nil
}

// HasAnyActiveOrders reports whether the kitchen still has work for this table.
func (t *Table) HasAnyActiveOrders() bool {
	for _, o := range t.orders {
		for _, item := range o.Items() {
			if item.IsInFlight() {
				return true
			}
		}
	}
	return false
}

func (t *Table) checkSeat(seat int) error {
	if seat < 0 || seat >= len(t.orders) {
		return errs.NewValueIsOutOfRangeError("seat", seat, 0, len(t.orders)-1)
	}
	return nil
}

func (t *Table) setSeats(seats int) error {
	if seats < 1 || seats > MaxSeats {
		return errs.NewValueIsOutOfRangeError("seats", seats, 1, MaxSeats)
	}

	t.orders = make([]*order.Order, seats)
	for i := range t.orders {
		t.orders[i] = order.NewOrder()
	}
	return nil
}

func (t *Table) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	t.location = location
	return nil
}
