package order

import (
	"iter"
	"slices"

	"oorms/internal/core/domain/model/kernel"
	"oorms/internal/core/domain/model/menu"
	"oorms/internal/pkg/errs"
)

// Order is the list of items ordered from one seat. It owns its items and
// keeps them in insertion order, which is both the display order and the
// billing order.
//
// The zero value is an empty, usable order.
type Order struct {
	items []*Item
}

// NewOrder returns an empty order.
func NewOrder() *Order {
	return &Order{}
}

// Items returns the items in insertion order. The slice is a copy; the items are not.
func (o *Order) Items() []*Item {
	return slices.Clone(o.items)
}

// Len returns the number of items, whatever their status.
func (o *Order) Len() int {
	return len(o.items)
}

// AddItem appends a REQUESTED item for menuItem and returns it.
func (o *Order) AddItem(menuItem *menu.Item) (*Item, error) {
	item, err := NewItem(menuItem)
	if err != nil {
		return nil, err
	}

	o.items = append(o.items, item)
	return item, nil
}

// RemoveItem removes item from the order.
//
// Returns:
//   - *errs.ObjectNotFoundError if the item is not in this order
//   - *errs.ValueIsInvalidError if the item is past PLACED
func (o *Order) RemoveItem(item *Item) error {
	idx := o.indexOf(item)
	if idx < 0 {
		if item == nil {
			return errs.NewValueIsRequiredError("item")
		}
		return errs.NewObjectNotFoundError("item", item.ID().String())
	}

	if !item.CanBeCancelled() {
		return errs.NewValueIsInvalidError("item is " + item.Status().String() + " and can no longer be cancelled")
	}

	o.items = slices.Delete(o.items, idx, idx+1)
	return nil
}

// UnorderedItems yields the REQUESTED items in order. The sequence is lazy and
// reads the order as it is when iterated.
func (o *Order) UnorderedItems() iter.Seq[*Item] {
	return func(yield func(*Item) bool) {
		for _, item := range o.items {
			if item.Status() != Requested {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}

// PlaceNewOrders sends every REQUESTED item to the kitchen. Items already
// placed are left alone, so calling it twice is harmless.
func (o *Order) PlaceNewOrders() error {
	for item := range o.UnorderedItems() {
		if err := item.AdvanceStatus(); err != nil {
			return err
		}
	}
	return nil
}

// RemoveUnorderedItems drops every REQUESTED item and keeps the rest in order.
func (o *Order) RemoveUnorderedItems() {
	o.items = slices.DeleteFunc(o.items, func(item *Item) bool {
		return item.Status() == Requested
	})
}

// TotalCost is the running subtotal: the price of every item currently in the
// order, placed or not, served or not.
func (o *Order) TotalCost() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.MenuItem().Price())
	}
	return total
}

func (o *Order) indexOf(item *Item) int {
	if item == nil {
		return -1
	}
	return slices.IndexFunc(o.items, func(candidate *Item) bool {
		return candidate == item
	})
}
