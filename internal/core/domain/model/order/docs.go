// Package order provides the order lifecycle of the restaurant: the Status
// state machine, the Item that moves through it, and the per-seat Order that
// owns the items.
//
// The package includes:
//   - Status: an ordered enumeration REQUESTED < PLACED < COOKED < READY < SERVED
//   - Item: one ordered instance of a menu item carrying its Status
//   - Order: the ordered list of items for one seat
//
// Key business rules:
//   - Status only ever advances, one step at a time; SERVED is terminal
//   - The server moves REQUESTED items to PLACED; the kitchen does the rest
//   - An item can be removed from its order only while REQUESTED or PLACED
//   - Served items stay in the order so the running total keeps them
//   - Insertion order is display order and billing order
package order
