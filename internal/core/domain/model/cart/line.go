package cart

import (
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// Line is a single cart entry: a menu-item reference plus the name and unit
// price snapshotted when the item was first added, and a positive quantity.
// The snapshot is deliberate; a price change on the menu must not reprice a
// cart that was filled before the change.
type Line struct {
	menuItemID kernel.UUID
	name       string
	price      kernel.Money
	quantity   int
}

// NewLine creates a validated cart line.
func NewLine(menuItemID kernel.UUID, name string, price kernel.Money, quantity int) (Line, error) {
	if err := menuItemID.Validate(); err != nil {
		return Line{}, err
	}
	if name == "" {
		return Line{}, errs.NewValueIsRequiredError("name")
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Line{
		menuItemID: menuItemID,
		name:       name,
		price:      price,
		quantity:   quantity,
	}, nil
}

// MenuItemID returns the identifier of the menu item this line refers to.
func (l Line) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Name returns the item name as it was when the line was created.
func (l Line) Name() string {
	return l.name
}

// Price returns the unit price as it was when the line was created.
func (l Line) Price() kernel.Money {
	return l.price
}

// Quantity returns the number of units on this line.
func (l Line) Quantity() int {
	return l.quantity
}

// Subtotal returns price x quantity for this line.
func (l Line) Subtotal() kernel.Money {
	return l.price.MultiplyQuantity(l.quantity)
}
