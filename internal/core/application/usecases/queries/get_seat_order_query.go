package queries

import (
	"errors"

	"oorms/internal/core/domain/model/kernel"
	"oorms/internal/core/domain/model/order"
	"oorms/internal/pkg/errs"
	"oorms/internal/pkg/guard"
)

var (
	ErrGetSeatOrderQueryIsNotConstructed = errors.New(
		"GetSeatOrderQuery must be created via NewGetSeatOrderQuery constructor",
	)
)

// GetSeatOrderQuery retrieves the order of one seat with its running total.
//
// Example:
//
//	query, err := NewGetSeatOrderQuery(2, 4)
//	if err != nil {
//	    return err
//	}
//	seatOrder, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Total: %s\n", seatOrder.Total)
type GetSeatOrderQuery struct {
	table int
	seat  int
	guard guard.ConstructorGuard
}

// NewGetSeatOrderQuery creates the query. Both numbers must be non-negative;
// whether they exist is checked when the query runs.
func NewGetSeatOrderQuery(table, seat int) (GetSeatOrderQuery, error) {
	var validationErrs []error
	if table < 0 {
		validationErrs = append(validationErrs, errs.NewValueIsInvalidError("table"))
	}
	if seat < 0 {
		validationErrs = append(validationErrs, errs.NewValueIsInvalidError("seat"))
	}
	if err := errors.Join(validationErrs...); err != nil {
		return GetSeatOrderQuery{}, err
	}

	return GetSeatOrderQuery{
		table: table,
		seat:  seat,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSeatOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetSeatOrderQueryIsNotConstructed)
}

// Table returns the table number.
func (q GetSeatOrderQuery) Table() int {
	return q.table
}

// Seat returns the seat number.
func (q GetSeatOrderQuery) Seat() int {
	return q.seat
}

// GetSeatOrderQueryResponse is the order of one seat, lines in order.
type GetSeatOrderQueryResponse struct {
	Table int
	Seat  int
	Lines []SeatOrderLine
	Total kernel.Money
}

// SeatOrderLine is one item of the order.
type SeatOrderLine struct {
	ID          kernel.UUID
	Name        string
	Price       kernel.Money
	Status      order.Status
	Cancellable bool
}
