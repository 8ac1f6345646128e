package controllers

import (
	"oorms/internal/core/domain/model/restaurant"
)

// RestaurantController shows the floor plan.
type RestaurantController struct {
	view       ServerView
	restaurant *restaurant.Restaurant
}

// NewRestaurantController returns the controller of the overview screen.
func NewRestaurantController(view ServerView, r *restaurant.Restaurant) (*RestaurantController, error) {
	if err := validate(view, r); err != nil {
		return nil, err
	}
	return &RestaurantController{view: view, restaurant: r}, nil
}

func (c *RestaurantController) Mode() Mode { return RestaurantMode }

func (c *RestaurantController) CreateUI() {
	c.view.CreateRestaurantUI()
}

// TableTouched opens table n.
func (c *RestaurantController) TableTouched(n int) error {
	t, err := c.restaurant.Table(n)
	if err != nil {
		return err
	}

	switchTo(c.view, &TableController{view: c.view, restaurant: c.restaurant, table: t, number: n})
	return nil
}
