package restaurant

import (
	"errors"
	"fmt"
	"slices"

	"oorms/internal/core/domain/model/kernel"
	"oorms/internal/core/domain/model/menu"
	"oorms/internal/core/domain/model/table"
	"oorms/internal/pkg/errs"
	"oorms/internal/pkg/guard"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant was not built by NewRestaurant.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// View is an observer of the restaurant. Update must re-render from the
// current model state and must not call NotifyViews.
//
// Views are compared by identity, so implementations should be pointers.
type View interface {
	Update()
}

// TableLayout describes one table of the floor plan.
type TableLayout struct {
	Seats    int
	Location kernel.Location
}

// Restaurant is the aggregate root: tables in floor plan order, the menu in
// catalog order and the registered views in registration order.
type Restaurant struct {
	tables []*table.Table
	menu   []*menu.Item
	views  []View
	guard  guard.ConstructorGuard
}

// NewRestaurant builds one table per layout record. Both the layout and the
// menu must be non-empty.
func NewRestaurant(layout []TableLayout, items []*menu.Item) (*Restaurant, error) {
	r := &Restaurant{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		r.setTables(layout),
		r.setMenu(items),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the restaurant was created through NewRestaurant.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// Tables returns the tables; the table number is the index.
func (r *Restaurant) Tables() []*table.Table {
	return slices.Clone(r.tables)
}

// Table returns table number n.
func (r *Restaurant) Table(n int) (*table.Table, error) {
	if n < 0 || n >= len(r.tables) {
		return nil, errs.NewValueIsOutOfRangeError("table", n, 0, len(r.tables)-1)
	}
	return r.tables[n], nil
}

// Menu returns the menu in catalog order.
func (r *Restaurant) Menu() []*menu.Item {
	return slices.Clone(r.menu)
}

// MenuItem returns menu entry n.
func (r *Restaurant) MenuItem(n int) (*menu.Item, error) {
	if n < 0 || n >= len(r.menu) {
		return nil, errs.NewValueIsOutOfRangeError("menu item", n, 0, len(r.menu)-1)
	}
	return r.menu[n], nil
}

// AddView registers view. Registering nil or the same view twice is an error.
func (r *Restaurant) AddView(view View) error {
	if view == nil {
		return errs.NewValueIsRequiredError("view")
	}
	if slices.Contains(r.views, view) {
		return errs.NewValueIsInvalidError("view is already registered")
	}

	r.views = append(r.views, view)
	return nil
}

// Views returns the registered views in registration order.
func (r *Restaurant) Views() []View {
	return slices.Clone(r.views)
}

// NotifyViews calls Update on every registered view, in registration order,
// and returns once all of them are done.
func (r *Restaurant) NotifyViews() {
	for _, view := range slices.Clone(r.views) {
		view.Update()
	}
}

func (r *Restaurant) setTables(layout []TableLayout) error {
	if len(layout) == 0 {
		return errs.NewValueIsRequiredError("tables")
	}

	tables := make([]*table.Table, 0, len(layout))
	var tableErrs []error
	for i, l := range layout {
		t, err := table.NewTable(l.Seats, l.Location)
		if err != nil {
			tableErrs = append(tableErrs, fmt.Errorf("table %d: %w", i, err))
			continue
		}
		tables = append(tables, t)
	}
	if err := errors.Join(tableErrs...); err != nil {
		return err
	}

	r.tables = tables
	return nil
}

func (r *Restaurant) setMenu(items []*menu.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("menu")
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("menu item %d: %w", i, err)
		}
	}

	r.menu = slices.Clone(items)
	return nil
}
