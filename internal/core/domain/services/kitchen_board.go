package services

import (
	"fmt"

	"oorms/internal/core/domain/model/order"
	"oorms/internal/core/domain/model/restaurant"
	"oorms/internal/pkg/errs"
)

// Labels of the kitchen buttons, by the status of the item they advance.
const (
	ActionStartCooking = "START COOKING"
	ActionMarkAsReady  = "MARK AS READY"
	ActionMarkAsServed = "MARK AS SERVED"
)

// KitchenTicket is one item the kitchen still has to work on.
type KitchenTicket struct {
	Table  int
	Seat   int
	Item   *order.Item
	Action string
}

// KitchenSection groups the tickets of one table.
type KitchenSection struct {
	Table   int
	Tickets []KitchenTicket
}

// Title is the heading shown above the section.
func (s KitchenSection) Title() string {
	return fmt.Sprintf("Table %d", s.Table)
}

// KitchenBoard is a domain service that lays out the kitchen's work queue.
//
// Business rules:
//   - Only tables with at least one PLACED, COOKED or READY item get a section
//   - Tickets are listed seat by seat, then in order of the seat's items
//   - REQUESTED items are not the kitchen's business; SERVED items are done
//
// Example usage:
//
//	board := services.NewKitchenBoard()
//	sections, err := board.Sections(r)
//	if err != nil {
//	    return err
//	}
//	for _, section := range sections {
//	    fmt.Println(section.Title())
//	    for _, ticket := range section.Tickets {
//	        fmt.Printf("[%s] %s\n", ticket.Action, ticket.Item.MenuItem().Name())
//	    }
//	}
type KitchenBoard struct{}

// NewKitchenBoard creates a new KitchenBoard instance.
func NewKitchenBoard() KitchenBoard {
	return KitchenBoard{}
}

// Sections returns one section per table with active orders, in table order.
//
// Returns:
//   - []KitchenSection: possibly empty, never nil
//   - error: when the restaurant was not built by its constructor
func (KitchenBoard) Sections(r *restaurant.Restaurant) ([]KitchenSection, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	sections := make([]KitchenSection, 0)
	for tableNumber, t := range r.Tables() {
		if !t.HasAnyActiveOrders() {
			continue
		}

		section := KitchenSection{Table: tableNumber}
		for seat, o := range t.Orders() {
			for _, item := range o.Items() {
				if !item.IsInFlight() {
					continue
				}

				action, err := ActionFor(item.Status())
				if err != nil {
					return nil, err
				}
				section.Tickets = append(section.Tickets, KitchenTicket{
					Table:  tableNumber,
					Seat:   seat,
					Item:   item,
					Action: action,
				})
			}
		}
		sections = append(sections, section)
	}

	return sections, nil
}

// Backlog counts the items in the kitchen by status. Every in-flight status
// is present in the result, with zero when nothing is in it.
func (KitchenBoard) Backlog(r *restaurant.Restaurant) (map[order.Status]int, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	backlog := map[order.Status]int{
		order.Placed: 0,
		order.Cooked: 0,
		order.Ready:  0,
	}
	for _, t := range r.Tables() {
		for _, o := range t.Orders() {
			for _, item := range o.Items() {
				if item.IsInFlight() {
					backlog[item.Status()]++
				}
			}
		}
	}

	return backlog, nil
}

// ActionFor returns the label of the kitchen button that advances an item in
// status. Only PLACED, COOKED and READY have one.
func ActionFor(status order.Status) (string, error) {
	switch status {
	case order.Placed:
		return ActionStartCooking, nil
	case order.Cooked:
		return ActionMarkAsReady, nil
	case order.Ready:
		return ActionMarkAsServed, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s has no kitchen action", status),
		)
	}
}
