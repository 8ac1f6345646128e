package controllers

import (
	"oorms/internal/core/domain/model/order"
	"oorms/internal/core/domain/model/restaurant"
	"oorms/internal/core/domain/model/table"
	"oorms/internal/pkg/errs"
)

// Mode tags the controller variants.
type Mode uint8

const (
	RestaurantMode Mode = iota + 1
	TableMode
	OrderMode
	KitchenMode
)

func (m Mode) String() string {
	switch m {
	case RestaurantMode:
		return "restaurant"
	case TableMode:
		return "table"
	case OrderMode:
		return "order"
	case KitchenMode:
		return "kitchen"
	default:
		return "unknown"
	}
}

// Controller is implemented by RestaurantController, TableController,
// OrderController and KitchenController. Callers switch on the concrete type
// (or on Mode) to reach the gestures of each variant.
type Controller interface {
	Mode() Mode
	// CreateUI tells the view which screen to draw.
	CreateUI()
}

// ServerView is the screen used by the wait staff.
type ServerView interface {
	restaurant.View
	SetController(controller Controller)
	CreateRestaurantUI()
	CreateTableUI(t *table.Table)
	CreateOrderUI(o *order.Order)
}

// KitchenView is the screen used by the cooks.
type KitchenView interface {
	restaurant.View
	CreateKitchenOrderUI()
}

// switchTo makes next the view's controller and redraws the view.
func switchTo(view ServerView, next Controller) {
	view.SetController(next)
	view.Update()
}

func validate(view any, r *restaurant.Restaurant) error {
	if view == nil {
		return errs.NewValueIsRequiredError("view")
	}
	return r.Validate()
}
