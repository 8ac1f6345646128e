package queries

import (
	"errors"

	"oorms/internal/core/domain/model/kernel"
	"oorms/internal/core/domain/model/order"
	"oorms/internal/pkg/guard"
)

var (
	ErrGetKitchenBoardQueryIsNotConstructed = errors.New(
		"GetKitchenBoardQuery must be created via NewGetKitchenBoardQuery constructor",
	)
)

// GetKitchenBoardQuery retrieves what the kitchen has to do, table by table.
type GetKitchenBoardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetKitchenBoardQuery creates a parameterless kitchen board query.
func NewGetKitchenBoardQuery() GetKitchenBoardQuery {
	return GetKitchenBoardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetKitchenBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenBoardQueryIsNotConstructed)
}

// GetKitchenBoardQueryResponse lists the sections of tables with active orders.
type GetKitchenBoardQueryResponse struct {
	Sections []KitchenBoardSection
}

// KitchenBoardSection is the work for one table.
type KitchenBoardSection struct {
	Table   int
	Title   string
	Tickets []KitchenBoardTicket
}

// KitchenBoardTicket is one in-flight item and the button that advances it.
type KitchenBoardTicket struct {
	ItemID kernel.UUID
	Table  int
	Seat   int
	Name   string
	Status order.Status
	Action string
}
