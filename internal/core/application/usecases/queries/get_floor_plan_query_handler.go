package queries

import (
	"context"

	"oorms/internal/core/domain/model/restaurant"
	"oorms/internal/core/ports"
)

// GetFloorPlanQueryHandler reads the floor plan on the executor.
type GetFloorPlanQueryHandler struct {
	executor   ports.Executor
	restaurant *restaurant.Restaurant
}

// NewGetFloorPlanQueryHandler creates a handler for floor plan queries.
func NewGetFloorPlanQueryHandler(
	executor ports.Executor,
	r *restaurant.Restaurant,
) GetFloorPlanQueryHandler {
	return GetFloorPlanQueryHandler{executor: executor, restaurant: r}
}

// Handle executes the query. A seat is occupied when its order has any item.
func (h GetFloorPlanQueryHandler) Handle(
	ctx context.Context,
	query GetFloorPlanQuery,
) (GetFloorPlanQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFloorPlanQueryResponse{}, err
	}

	var response GetFloorPlanQueryResponse
	err := h.executor.Do(ctx, func() error {
		if err := h.restaurant.Validate(); err != nil {
			return err
		}

		tables := h.restaurant.Tables()
		response.Tables = make([]FloorPlanTable, 0, len(tables))
		for number, t := range tables {
			occupied := make([]int, 0)
			for seat := range t.Seats() {
				has, err := t.HasOrderFor(seat)
				if err != nil {
					return err
				}
				if has {
					occupied = append(occupied, seat)
				}
			}

			response.Tables = append(response.Tables, FloorPlanTable{
				Number:          number,
				Seats:           t.Seats(),
				Location:        t.Location(),
				OccupiedSeats:   occupied,
				HasActiveOrders: t.HasAnyActiveOrders(),
			})
		}
		return nil
	})
	if err != nil {
		return GetFloorPlanQueryResponse{}, err
	}

	return response, nil
}
