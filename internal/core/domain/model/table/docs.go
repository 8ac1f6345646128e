// Package table provides the Table entity: a fixed number of seats at a
// location on the floor plan, with one Order per seat.
//
// Key business rules:
//   - A table has at least one seat; the seat count never changes
//   - Seats are numbered from 0; every seat always has an Order, possibly empty
//   - A seat "has an order" when its Order holds at least one item
//   - A table "has active orders" when some item is PLACED, COOKED or READY
package table
