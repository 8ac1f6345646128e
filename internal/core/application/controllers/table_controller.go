package controllers

import (
	"oorms/internal/core/domain/model/restaurant"
	"oorms/internal/core/domain/model/table"
)

// TableController shows one table and its seats.
type TableController struct {
	view       ServerView
	restaurant *restaurant.Restaurant
	table      *table.Table
	number     int
}

func (c *TableController) Mode() Mode { return TableMode }

func (c *TableController) CreateUI() {
	c.view.CreateTableUI(c.table)
}

// Table returns the table on screen.
func (c *TableController) Table() *table.Table {
	return c.table
}

// TableNumber returns the number of the table on screen.
func (c *TableController) TableNumber() int {
	return c.number
}

// SeatTouched opens the order of seat.
func (c *TableController) SeatTouched(seat int) error {
	o, err := c.table.OrderFor(seat)
	if err != nil {
		return err
	}

	switchTo(c.view, &OrderController{
		view:       c.view,
		restaurant: c.restaurant,
		table:      c.table,
		number:     c.number,
		seat:       seat,
		order:      o,
	})
	return nil
}

// Done goes back to the floor plan.
func (c *TableController) Done() {
	switchTo(c.view, &RestaurantController{view: c.view, restaurant: c.restaurant})
}
