package order

import (
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// Line is an immutable snapshot of one cart line at checkout time: the menu
// item it referred to plus the name, unit price, and quantity the customer
// actually agreed to. Once an order exists its lines never change, even if
// the menu does.
type Line struct {
	menuItemID kernel.UUID
	name       string
	price      kernel.Money
	quantity   int
}

// NewLine creates a validated order line. Checkout uses it to re-validate
// every cart line before persisting; a failure here means the cart store
// handed over corrupted state.
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

// MenuItemID returns the identifier of the menu item this line snapshotted.
func (l Line) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Name returns the item name at checkout time.
func (l Line) Name() string {
	return l.name
}

// Price returns the unit price at checkout time.
func (l Line) Price() kernel.Money {
	return l.price
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// Subtotal returns price x quantity for this line.
func (l Line) Subtotal() kernel.Money {
	return l.price.MultiplyQuantity(l.quantity)
}
