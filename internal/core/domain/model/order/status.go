package order

import (
	"fmt"

	"oorms/internal/pkg/errs"
)

// Status is the lifecycle state of an order item.
//
// State transitions:
//
//	REQUESTED ──> PLACED ──> COOKED ──> READY ──> SERVED
//	 (server)      (kitchen: start cooking, mark ready, mark served)
//
// Status is opaque: values can be compared with ==, Less and LessOrEqual and
// advanced with Next, but no arithmetic can be done on them. The zero value is
// Unknown and fails Validate.
type Status struct {
	rank uint8
}

var (
	// Unknown is the zero value; it helps catch uninitialized statuses.
	Unknown = Status{}

	// Requested items were added by a server but not sent to the kitchen.
	Requested = Status{rank: 1}

	// Placed items were sent to the kitchen and can still be cancelled.
	Placed = Status{rank: 2}

	// Cooked items are being prepared.
	Cooked = Status{rank: 3}

	// Ready items wait at the pass.
	Ready = Status{rank: 4}

	// Served is terminal.
	Served = Status{rank: 5}
)

var statusNames = [...]string{
	"Unknown",
	"REQUESTED",
	"PLACED",
	"COOKED",
	"READY",
	"SERVED",
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Requested, Placed, Cooked, Ready, Served}
}

// Validate returns an error for Unknown and for values outside the enumeration.
func (s Status) Validate() error {
	if s.rank < Requested.rank || s.rank > Served.rank {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s.rank))
	}
	return nil
}

// String returns the upper case name, or "Unknown".
func (s Status) String() string {
	if int(s.rank) < len(statusNames) {
		return statusNames[s.rank]
	}
	return statusNames[0]
}

// Less reports whether s comes strictly before other in the lifecycle.
func (s Status) Less(other Status) bool {
	return s.rank < other.rank
}

// LessOrEqual reports whether s comes before other or is other.
func (s Status) LessOrEqual(other Status) bool {
	return s.rank <= other.rank
}

// Next returns the following status.
//
// Returns:
//   - the successor for REQUESTED, PLACED, COOKED and READY
//   - (Unknown, error) for SERVED, which is terminal, and for invalid values
func (s Status) Next() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s == Served {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is terminal and has no next status", s),
		)
	}
	return Status{rank: s.rank + 1}, nil
}
