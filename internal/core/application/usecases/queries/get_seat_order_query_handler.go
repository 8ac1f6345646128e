package queries

import (
	"context"

	"oorms/internal/core/domain/model/restaurant"
	"oorms/internal/core/ports"
)

// GetSeatOrderQueryHandler reads one seat's order on the executor.
type GetSeatOrderQueryHandler struct {
	executor   ports.Executor
	restaurant *restaurant.Restaurant
}

// NewGetSeatOrderQueryHandler creates a handler for seat order queries.
func NewGetSeatOrderQueryHandler(
	executor ports.Executor,
	r *restaurant.Restaurant,
) GetSeatOrderQueryHandler {
	return GetSeatOrderQueryHandler{executor: executor, restaurant: r}
}

// Handle executes the query.
//
// Returns *errs.ValueIsOutOfRangeError when the table or the seat does not exist.
func (h GetSeatOrderQueryHandler) Handle(
	ctx context.Context,
	query GetSeatOrderQuery,
) (GetSeatOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSeatOrderQueryResponse{}, err
	}

	var response GetSeatOrderQueryResponse
	err := h.executor.Do(ctx, func() error {
		t, err := h.restaurant.Table(query.Table())
		if err != nil {
			return err
		}
		o, err := t.OrderFor(query.Seat())
		if err != nil {
			return err
		}

		response = GetSeatOrderQueryResponse{
			Table: query.Table(),
			Seat:  query.Seat(),
			Lines: make([]SeatOrderLine, 0, o.Len()),
			Total: o.TotalCost(),
		}
		for _, item := range o.Items() {
			response.Lines = append(response.Lines, SeatOrderLine{
				ID:          item.ID(),
				Name:        item.MenuItem().Name(),
				Price:       item.MenuItem().Price(),
				Status:      item.Status(),
				Cancellable: item.CanBeCancelled(),
			})
		}
		return nil
	})
	if err != nil {
		return GetSeatOrderQueryResponse{}, err
	}

	return response, nil
}
