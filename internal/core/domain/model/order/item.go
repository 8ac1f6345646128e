package order

import (
	"errors"

	"oorms/internal/core/domain/model/kernel"
	"oorms/internal/core/domain/model/menu"
)

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errors.New("order Item must be created via NewItem constructor")

// Item is one ordered instance of a menu item. It references the shared,
// read-only menu entry and carries its own lifecycle Status.
//
// Item follows these invariants:
//   - starts REQUESTED
//   - status only advances, one step per AdvanceStatus call
//   - identity is its ID; two items of the same dish are distinct
type Item struct {
	id       kernel.UUID
	menuItem *menu.Item
	status   Status
}

// NewItem creates a REQUESTED item for menuItem.
func NewItem(menuItem *menu.Item) (*Item, error) {
	if err := menuItem.Validate(); err != nil {
		return nil, err
	}

	return &Item{
		id:       kernel.NewUUID(),
		menuItem: menuItem,
		status:   Requested,
	}, nil
}

// Validate ensures the item was created through NewItem.
func (i *Item) Validate() error {
	if i == nil || i.id.Validate() != nil {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's identity.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// MenuItem returns the catalog entry this item was ordered from.
func (i *Item) MenuItem() *menu.Item {
	return i.menuItem
}

// Status returns the current lifecycle state.
func (i *Item) Status() Status {
	return i.status
}

// AdvanceStatus moves the item to the next state. Advancing a SERVED item is
// a caller error: the status is left unchanged and an error is returned.
func (i *Item) AdvanceStatus() error {
	next, err := i.status.Next()
	if err != nil {
		return err
	}

	i.status = next
	return nil
}

// CanBeCancelled is true while the item is REQUESTED or PLACED.
func (i *Item) CanBeCancelled() bool {
	return i.status.LessOrEqual(Placed)
}

// HasBeenOrdered is true once the item reached the kitchen.
func (i *Item) HasBeenOrdered() bool {
	return Placed.LessOrEqual(i.status)
}

// HasBeenServed is true for SERVED items.
func (i *Item) HasBeenServed() bool {
	return i.status == Served
}

// IsInFlight is true while the kitchen still has work to do on the item:
// PLACED, COOKED or READY.
func (i *Item) IsInFlight() bool {
	return i.HasBeenOrdered() && !i.HasBeenServed()
}
