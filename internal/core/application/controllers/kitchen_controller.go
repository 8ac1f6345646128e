package controllers

import (
	"oorms/internal/core/domain/model/order"
	"oorms/internal/core/domain/model/restaurant"
	"oorms/internal/pkg/errs"
)

// KitchenController handles the buttons of the kitchen board.
type KitchenController struct {
	view       KitchenView
	restaurant *restaurant.Restaurant
}

// NewKitchenController returns the controller of a kitchen view.
func NewKitchenController(view KitchenView, r *restaurant.Restaurant) (*KitchenController, error) {
	if err := validate(view, r); err != nil {
		return nil, err
	}
	return &KitchenController{view: view, restaurant: r}, nil
}

func (c *KitchenController) Mode() Mode { return KitchenMode }

func (c *KitchenController) CreateUI() {
	c.view.CreateKitchenOrderUI()
}

// ButtonPressed moves item to its next status and refreshes every view.
func (c *KitchenController) ButtonPressed(item *order.Item) error {
	if err := item.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("item", err)
	}
	if err := item.AdvanceStatus(); err != nil {
		return err
	}

	c.restaurant.NotifyViews()
	return nil
}
