package console

import (
	"fmt"
	"io"

	"oorms/internal/core/application/controllers"
	"oorms/internal/core/domain/model/order"
	"oorms/internal/core/domain/model/restaurant"
	"oorms/internal/core/domain/model/table"
	"oorms/internal/pkg/errs"
)

// OrderLine is an order item as drawn on the order screen.
type OrderLine struct {
	Index int
	Item  *order.Item
}

// ServerView draws the server screens. It is a restaurant.View and a
// controllers.ServerView.
type ServerView struct {
	out        io.Writer
	restaurant *restaurant.Restaurant
	controller controllers.Controller
	lines      []OrderLine
}

// NewServerView returns a view showing the floor plan. Nothing is drawn until Update.
func NewServerView(out io.Writer, r *restaurant.Restaurant) (*ServerView, error) {
	v := &ServerView{out: out, restaurant: r}

	c, err := controllers.NewRestaurantController(v, r)
	if err != nil {
		return nil, err
	}
	v.controller = c
	return v, nil
}

// Controller returns the active controller.
func (v *ServerView) Controller() controllers.Controller {
	return v.controller
}

func (v *ServerView) SetController(c controllers.Controller) {
	v.controller = c
}

// Update redraws the screen of the active controller.
func (v *ServerView) Update() {
	v.lines = nil
	v.controller.CreateUI()
}

func (v *ServerView) CreateRestaurantUI() {
	fmt.Fprintln(v.out, "== Restaurant ==")
	for n, t := range v.restaurant.Tables() {
		occupied := 0
		for seat := range t.Seats() {
			if has, _ := t.HasOrderFor(seat); has {
				occupied++
			}
		}

		marker := ""
		if t.HasAnyActiveOrders() {
			marker = "  (kitchen busy)"
		}
		fmt.Fprintf(v.out, "Table %d  %d/%d seats ordering  at (%d,%d)%s\n",
			n, occupied, t.Seats(), t.Location().X(), t.Location().Y(), marker)
	}
	fmt.Fprintln(v.out, "> table N")
}

func (v *ServerView) CreateTableUI(t *table.Table) {
	fmt.Fprintf(v.out, "== Table %d ==\n", v.tableNumber())
	for seat := range t.Seats() {
		has, _ := t.HasOrderFor(seat)
		if has {
			fmt.Fprintf(v.out, "Seat %d *\n", seat)
		} else {
			fmt.Fprintf(v.out, "Seat %d\n", seat)
		}
	}
	fmt.Fprintln(v.out, "> seat N | done")
}

func (v *ServerView) CreateOrderUI(o *order.Order) {
	if oc, ok := v.controller.(*controllers.OrderController); ok {
		fmt.Fprintf(v.out, "== Table %d, seat %d ==\n", oc.TableNumber(), oc.Seat())
	} else {
		fmt.Fprintln(v.out, "== Order ==")
	}

	fmt.Fprintln(v.out, "Menu:")
	for n, item := range v.restaurant.Menu() {
		fmt.Fprintf(v.out, "  %2d) %-22s %6s\n", n, item.Name(), item.Price())
	}

	fmt.Fprintln(v.out, "Order:")
	v.lines = make([]OrderLine, 0, o.Len())
	for n, item := range o.Items() {
		v.lines = append(v.lines, OrderLine{Index: n, Item: item})

		ordered := "[ ]"
		if item.HasBeenOrdered() {
			ordered = "[*]"
		}
		cancel := ""
		if item.CanBeCancelled() {
			cancel = fmt.Sprintf("  X %d", n)
		}
		fmt.Fprintf(v.out, "  %s %-22s %6s  %-9s%s\n",
			ordered, item.MenuItem().Name(), item.MenuItem().Price(), item.Status(), cancel)
	}
	fmt.Fprintf(v.out, "Total: %s\n", o.TotalCost())
	fmt.Fprintln(v.out, "> add N | x N | place | cancel")
}

// Line returns order line n of the last order screen drawn.
func (v *ServerView) Line(n int) (OrderLine, error) {
	if n < 0 || n >= len(v.lines) {
		return OrderLine{}, errs.NewValueIsOutOfRangeError("line", n, 0, len(v.lines)-1)
	}
	return v.lines[n], nil
}

func (v *ServerView) tableNumber() int {
	if tc, ok := v.controller.(*controllers.TableController); ok {
		return tc.TableNumber()
	}
	return -1
}
