package controllers

import (
	"oorms/internal/core/domain/model/menu"
	"oorms/internal/core/domain/model/order"
	"oorms/internal/core/domain/model/restaurant"
	"oorms/internal/core/domain/model/table"
	"oorms/internal/pkg/errs"
)

// OrderController edits the order of one seat.
//
// Adding items only redraws the server view: nothing reaches the kitchen until
// UpdateOrder. Placing, cancelling and removing items broadcast, because the
// kitchen board and the table overview both change.
type OrderController struct {
	view       ServerView
	restaurant *restaurant.Restaurant
	table      *table.Table
	number     int
	seat       int
	order      *order.Order
}

func (c *OrderController) Mode() Mode { return OrderMode }

func (c *OrderController) CreateUI() {
	c.view.CreateOrderUI(c.order)
}

// Table returns the table the seat belongs to.
func (c *OrderController) Table() *table.Table {
	return c.table
}

// TableNumber returns the number of the table the seat belongs to.
func (c *OrderController) TableNumber() int {
	return c.number
}

// Seat returns the seat number.
func (c *OrderController) Seat() int {
	return c.seat
}

// Order returns the order being edited.
func (c *OrderController) Order() *order.Order {
	return c.order
}

// AddItem appends a REQUESTED item for menuItem.
func (c *OrderController) AddItem(menuItem *menu.Item) error {
	if _, err := c.order.AddItem(menuItem); err != nil {
		return err
	}

	c.view.Update()
	return nil
}

// UpdateOrder sends the REQUESTED items to the kitchen and returns to the table.
func (c *OrderController) UpdateOrder() error {
	if err := c.order.PlaceNewOrders(); err != nil {
		return err
	}

	c.backToTable()
	return nil
}

// CancelChanges drops the REQUESTED items and returns to the table.
func (c *OrderController) CancelChanges() {
	c.order.RemoveUnorderedItems()
	c.backToTable()
}

// RemoveItem cancels a single REQUESTED or PLACED item.
func (c *OrderController) RemoveItem(item *order.Item) error {
	if item == nil {
		return errs.NewValueIsRequiredError("item")
	}
	if err := c.order.RemoveItem(item); err != nil {
		return err
	}

	c.restaurant.NotifyViews()
	return nil
}

func (c *OrderController) backToTable() {
	c.view.SetController(&TableController{
		view:       c.view,
		restaurant: c.restaurant,
		table:      c.table,
		number:     c.number,
	})
	c.restaurant.NotifyViews()
}
