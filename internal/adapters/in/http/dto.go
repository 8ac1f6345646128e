package http

import (
	"oorms/internal/core/application/usecases/queries"
)

// Error is the body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Location struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Table struct {
	Number          int      `json:"number"`
	Seats           int      `json:"seats"`
	Location        Location `json:"location"`
	OccupiedSeats   []int    `json:"occupiedSeats"`
	HasActiveOrders bool     `json:"hasActiveOrders"`
}

type OrderLine struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Status      string `json:"status"`
	Cancellable bool   `json:"cancellable"`
}

type SeatOrder struct {
	Table int         `json:"table"`
	Seat  int         `json:"seat"`
	Items []OrderLine `json:"items"`
	Total string      `json:"total"`
}

type KitchenTicket struct {
	ItemID string `json:"itemId"`
	Seat   int    `json:"seat"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Action string `json:"action"`
}

type KitchenSection struct {
	Table   int             `json:"table"`
	Title   string          `json:"title"`
	Tickets []KitchenTicket `json:"tickets"`
}

type KitchenBoard struct {
	Sections []KitchenSection `json:"sections"`
}

// FeedMessage is what the kitchen feed writes to its clients.
type FeedMessage struct {
	Event string       `json:"event"`
	Data  KitchenBoard `json:"data"`
}

const EventKitchenUpdate = "kitchen_update"

func toTables(plan queries.GetFloorPlanQueryResponse) []Table {
	tables := make([]Table, 0, len(plan.Tables))
	for _, t := range plan.Tables {
		tables = append(tables, Table{
			Number: t.Number,
			Seats:  t.Seats,
			Location: Location{
				X: int(t.Location.X()),
				Y: int(t.Location.Y()),
			},
			OccupiedSeats:   t.OccupiedSeats,
			HasActiveOrders: t.HasActiveOrders,
		})
	}
	return tables
}

func toSeatOrder(o queries.GetSeatOrderQueryResponse) SeatOrder {
	items := make([]OrderLine, 0, len(o.Lines))
	for _, line := range o.Lines {
		items = append(items, OrderLine{
			ID:          line.ID.String(),
			Name:        line.Name,
			Price:       line.Price.String(),
			Status:      line.Status.String(),
			Cancellable: line.Cancellable,
		})
	}
	return SeatOrder{
		Table: o.Table,
		Seat:  o.Seat,
		Items: items,
		Total: o.Total.String(),
	}
}

func toKitchenBoard(b queries.GetKitchenBoardQueryResponse) KitchenBoard {
	sections := make([]KitchenSection, 0, len(b.Sections))
	for _, s := range b.Sections {
		tickets := make([]KitchenTicket, 0, len(s.Tickets))
		for _, t := range s.Tickets {
			tickets = append(tickets, KitchenTicket{
				ItemID: t.ItemID.String(),
				Seat:   t.Seat,
				Name:   t.Name,
				Status: t.Status.String(),
				Action: t.Action,
			})
		}
		sections = append(sections, KitchenSection{
			Table:   s.Table,
			Title:   s.Title,
			Tickets: tickets,
		})
	}
	return KitchenBoard{Sections: sections}
}
