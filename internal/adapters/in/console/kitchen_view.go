package console

import (
	"fmt"
	"io"
	"log/slog"

	"oorms/internal/core/application/controllers"
	"oorms/internal/core/domain/model/restaurant"
	"oorms/internal/core/domain/services"
	"oorms/internal/pkg/errs"
)

// KitchenButton is a kitchen ticket as drawn on the board.
type KitchenButton struct {
	Index  int
	Ticket services.KitchenTicket
}

// KitchenView draws the kitchen board.
type KitchenView struct {
	out        io.Writer
	restaurant *restaurant.Restaurant
	controller *controllers.KitchenController
	board      services.KitchenBoard
	buttons    []KitchenButton
	logger     *slog.Logger
}

// NewKitchenView returns a kitchen view. Nothing is drawn until Update.
func NewKitchenView(out io.Writer, r *restaurant.Restaurant, logger *slog.Logger) (*KitchenView, error) {
	v := &KitchenView{
		out:        out,
		restaurant: r,
		board:      services.NewKitchenBoard(),
		logger:     logger.With("component", "KitchenView"),
	}

	c, err := controllers.NewKitchenController(v, r)
	if err != nil {
		return nil, err
	}
	v.controller = c
	return v, nil
}

// Controller returns the kitchen controller.
func (v *KitchenView) Controller() *controllers.KitchenController {
	return v.controller
}

func (v *KitchenView) Update() {
	v.controller.CreateUI()
}

func (v *KitchenView) CreateKitchenOrderUI() {
	sections, err := v.board.Sections(v.restaurant)
	if err != nil {
		v.logger.Error("failed to lay out kitchen board", "error", err)
		return
	}

	v.buttons = v.buttons[:0]
	fmt.Fprintln(v.out, "== Kitchen ==")
	if len(sections) == 0 {
		fmt.Fprintln(v.out, "Nothing to cook")
	}
	for _, section := range sections {
		fmt.Fprintln(v.out, section.Title())
		for _, ticket := range section.Tickets {
			button := KitchenButton{Index: len(v.buttons), Ticket: ticket}
			v.buttons = append(v.buttons, button)
			fmt.Fprintf(v.out, "  %2d) [%s] %s  (seat %d)\n",
				button.Index, ticket.Action, ticket.Item.MenuItem().Name(), ticket.Seat)
		}
	}
	fmt.Fprintln(v.out, "> k N")
}

// Button returns button n of the last board drawn.
func (v *KitchenView) Button(n int) (KitchenButton, error) {
	if n < 0 || n >= len(v.buttons) {
		return KitchenButton{}, errs.NewValueIsOutOfRangeError("button", n, 0, len(v.buttons)-1)
	}
	return v.buttons[n], nil
}
