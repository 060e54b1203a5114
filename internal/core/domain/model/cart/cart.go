package cart

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart instance was not created
	// through the NewCart or RestoreCart factory functions.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart")
)

// Cart is the aggregate holding the items one shopper is about to buy.
// Each cart is scoped to a single session; the store that owns the carts is
// responsible for serializing access per session, so the aggregate itself is
// free of locking.
//
// Cart invariants:
//   - At most one Line per distinct menu-item identifier; adding the same
//     item again increments the existing line's quantity instead of
//     duplicating it
//   - Line order is insertion order and survives snapshotting
//   - Every line carries a name/price snapshot captured at add-time; the
//     catalog is never re-read on the cart's behalf
type Cart struct {
	sessionID string
	lines     []Line

	isConstructed bool
}

// NewCart creates an empty cart for the given session.
func NewCart(sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, errs.NewValueIsRequiredError("sessionID")
	}

	return &Cart{
		sessionID:     sessionID,
		lines:         make([]Line, 0),
		isConstructed: true,
	}, nil
}

// RestoreCart reconstructs a cart from persistence. The lines must already be
// valid Line values, which the storage adapters guarantee by rebuilding them
// through NewLine.
func RestoreCart(sessionID string, lines []Line) (*Cart, error) {
	cart, err := NewCart(sessionID)
	if err != nil {
		return nil, err
	}

	cart.lines = append(cart.lines, lines...)
	return cart, nil
}

// Validate ensures the Cart was created through a factory function.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// SessionID returns the session this cart belongs to.
func (c *Cart) SessionID() string {
	return c.sessionID
}

// AddItem puts quantity units of a menu item into the cart, snapshotting the
// item's name and price. If a line for the item already exists its quantity
// is incremented by the given amount; otherwise a new line is appended.
func (c *Cart) AddItem(item *menu.Item, quantity int) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	for i := range c.lines {
		if c.lines[i].menuItemID.IsEqual(item.ID()) {
			c.lines[i].quantity += quantity
			return nil
		}
	}

	line, err := NewLine(item.ID(), item.Name(), item.Price(), quantity)
	if err != nil {
		return err
	}

	c.lines = append(c.lines, line)
	return nil
}

// Lines returns a copy of the current lines in insertion order.
// Mutating the returned slice does not affect the cart.
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Total returns the sum of price x quantity over all lines.
func (c *Cart) Total() kernel.Money {
	var total kernel.Money
	for _, line := range c.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clear removes every line from the cart. Clearing an empty cart is a no-op.
func (c *Cart) Clear() {
	c.lines = c.lines[:0]
}
