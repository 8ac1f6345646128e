package queries

import (
	"context"

	"oorms/internal/core/domain/model/restaurant"
	"oorms/internal/core/domain/services"
	"oorms/internal/core/ports"
)

// GetKitchenBoardQueryHandler reads the kitchen board on the executor.
type GetKitchenBoardQueryHandler struct {
	executor   ports.Executor
	restaurant *restaurant.Restaurant
}

// NewGetKitchenBoardQueryHandler creates a handler for kitchen board queries.
func NewGetKitchenBoardQueryHandler(
	executor ports.Executor,
	r *restaurant.Restaurant,
) GetKitchenBoardQueryHandler {
	return GetKitchenBoardQueryHandler{executor: executor, restaurant: r}
}

// Handle executes the query.
func (h GetKitchenBoardQueryHandler) Handle(
	ctx context.Context,
	query GetKitchenBoardQuery,
) (GetKitchenBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetKitchenBoardQueryResponse{}, err
	}

	var response GetKitchenBoardQueryResponse
	err := h.executor.Do(ctx, func() error {
		var err error
		response, err = ProjectKitchenBoard(h.restaurant)
		return err
	})
	if err != nil {
		return GetKitchenBoardQueryResponse{}, err
	}

	return response, nil
}

// ProjectKitchenBoard builds the kitchen board read model. It reads live
// state, so it must run on the executor; views call it from Update, which
// already does.
func ProjectKitchenBoard(r *restaurant.Restaurant) (GetKitchenBoardQueryResponse, error) {
	sections, err := services.NewKitchenBoard().Sections(r)
	if err != nil {
		return GetKitchenBoardQueryResponse{}, err
	}

	response := GetKitchenBoardQueryResponse{
		Sections: make([]KitchenBoardSection, 0, len(sections)),
	}
	for _, section := range sections {
		projected := KitchenBoardSection{
			Table:   section.Table,
			Title:   section.Title(),
			Tickets: make([]KitchenBoardTicket, 0, len(section.Tickets)),
		}
		for _, ticket := range section.Tickets {
			projected.Tickets = append(projected.Tickets, KitchenBoardTicket{
				ItemID: ticket.Item.ID(),
				Table:  ticket.Table,
				Seat:   ticket.Seat,
				Name:   ticket.Item.MenuItem().Name(),
				Status: ticket.Item.Status(),
				Action: ticket.Action,
			})
		}
		response.Sections = append(response.Sections, projected)
	}

	return response, nil
}
