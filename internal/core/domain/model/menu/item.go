package menu

import (
	"errors"
	"strings"

	"oorms/internal/core/domain/model/kernel"
	"oorms/internal/pkg/errs"
	"oorms/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not built by NewItem.
var ErrItemIsNotConstructed = errors.New("menu Item must be created via NewItem constructor")

// Item is a catalog entry: a dish name and its price.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("16.00")
//	burger, err := menu.NewItem("House burger", price)
//	if err != nil {
//	    return err
//	}
type Item struct {
	name  string
	price kernel.Money
	guard guard.ConstructorGuard
}

// NewItem validates the name (non blank) and the price (constructed Money, hence >= 0).
func NewItem(name string, price kernel.Money) (*Item, error) {
	item := &Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the item was created through NewItem.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Name returns the dish name as printed on the menu.
func (i *Item) Name() string {
	return i.name
}

// Price returns the dish price.
func (i *Item) Price() kernel.Money {
	return i.price
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}
