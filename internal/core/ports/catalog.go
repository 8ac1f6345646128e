package ports

import (
	"context"

	"oorms/internal/core/domain/model/menu"
	"oorms/internal/core/domain/model/restaurant"
)

// Catalog is the static configuration the restaurant is built from: the
// floor plan and the menu.
type Catalog interface {
	// Layout returns one record per table, in table number order.
	Layout(ctx context.Context) ([]restaurant.TableLayout, error)

	// Menu returns the menu items in display order.
	Menu(ctx context.Context) ([]*menu.Item, error)
}
