package kernel

import (
	"errors"
	"fmt"

	"oorms/internal/pkg/errs"
	"oorms/internal/pkg/guard"
)

// Coordinate is a position on the floor plan, in layout units.
type Coordinate int

const (
	// LocationMinX is the left edge of the floor plan.
	LocationMinX Coordinate = 0
	// LocationMinY is the top edge of the floor plan.
	LocationMinY Coordinate = 0
	// LocationMaxX is the right edge of the floor plan.
	LocationMaxX Coordinate = 10000
	// LocationMaxY is the bottom edge of the floor plan.
	LocationMaxY Coordinate = 10000
)

// ErrLocationIsNotConstructed is returned when a Location was not built by NewLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError("location must be created via NewLocation")

// Location is the point where a table stands on the floor plan. Views use it
// to lay tables out; the core only carries it.
//
// Example:
//
//	loc, err := kernel.NewLocation(270, 520)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(loc) // Location(270,520)
type Location struct { //nolint:recvcheck // pointer receivers only on constructor setters
	x     Coordinate
	y     Coordinate
	guard guard.ConstructorGuard
}

// NewLocation creates a Location; both coordinates must lie within the floor plan bounds.
func NewLocation(x Coordinate, y Coordinate) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setX(x), loc.setY(y)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate returns ErrLocationIsNotConstructed for the zero value.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// X returns the horizontal coordinate.
func (l Location) X() Coordinate {
	return l.x
}

// Y returns the vertical coordinate.
func (l Location) Y() Coordinate {
	return l.y
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return fmt.Sprintf("Location(%d,%d)", l.x, l.y)
}

// IsEqual compares two constructed locations by coordinates.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

func (l *Location) setX(x Coordinate) error {
	if x < LocationMinX || x > LocationMaxX {
		return errs.NewValueIsOutOfRangeError("x", x, LocationMinX, LocationMaxX)
	}

	l.x = x
	return nil
}

func (l *Location) setY(y Coordinate) error {
	if y < LocationMinY || y > LocationMaxY {
		return errs.NewValueIsOutOfRangeError("y", y, LocationMinY, LocationMaxY)
	}

	l.y = y
	return nil
}
