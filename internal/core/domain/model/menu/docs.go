// Package menu provides the menu catalog entry of the restaurant.
//
// An Item is immutable once built: it is created at startup from the static
// catalog and shared read-only by every order item that references it.
package menu
