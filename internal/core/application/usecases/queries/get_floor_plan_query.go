package queries

import (
	"errors"

	"oorms/internal/core/domain/model/kernel"
	"oorms/internal/pkg/guard"
)

var (
	ErrGetFloorPlanQueryIsNotConstructed = errors.New(
		"GetFloorPlanQuery must be created via NewGetFloorPlanQuery constructor",
	)
)

// GetFloorPlanQuery retrieves every table with its occupancy.
//
// Example:
//
//	query := NewGetFloorPlanQuery()
//	handler := NewGetFloorPlanQueryHandler(executor, restaurant)
//
//	plan, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to read floor plan: %w", err)
//	}
//	for _, t := range plan.Tables {
//	    fmt.Printf("table %d at %s, %d/%d seats taken\n",
//	        t.Number, t.Location, len(t.OccupiedSeats), t.Seats)
//	}
type GetFloorPlanQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFloorPlanQuery creates a parameterless floor plan query.
func NewGetFloorPlanQuery() GetFloorPlanQuery {
	return GetFloorPlanQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetFloorPlanQuery) Validate() error {
	return q.guard.Validate(ErrGetFloorPlanQueryIsNotConstructed)
}

// GetFloorPlanQueryResponse lists the tables in table number order.
type GetFloorPlanQueryResponse struct {
	Tables []FloorPlanTable
}

// FloorPlanTable is one table of the floor plan read model.
type FloorPlanTable struct {
	Number          int
	Seats           int
	Location        kernel.Location
	OccupiedSeats   []int
	HasActiveOrders bool
}
