package commands

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrAddItemToCartCommandIsNotConstructed = errors.New(
		"AddItemToCartCommand must be created via NewAddItemToCartCommand constructor",
	)
)

// AddItemToCartCommand represents a request to put a quantity of one menu
// item into a session's cart.
//
// The quantity accumulates: adding an item that is already in the cart
// increments the existing line rather than duplicating it. The constructor
// rejects non-positive quantities; the HTTP boundary is the layer that
// coerces a missing or unparseable form value to 1 before building the
// command.
type AddItemToCartCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	itemID    kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddItemToCartCommand creates a command to add a menu item to a cart.
// Validates that the session id is present, the item id is valid, and the
// quantity is a positive integer.
func NewAddItemToCartCommand(sessionID string, itemID kernel.UUID, quantity int) (AddItemToCartCommand, error) {
	cmd := AddItemToCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setItemID(itemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddItemToCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddItemToCartCommandIsNotConstructed)
}

// SessionID returns the cart session the item goes into.
func (c AddItemToCartCommand) SessionID() string {
	return c.sessionID
}

// ItemID returns the identifier of the menu item to add.
func (c AddItemToCartCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Quantity returns how many units to add.
func (c AddItemToCartCommand) Quantity() int {
	return c.quantity
}

func (c *AddItemToCartCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("sessionID")
	}

	c.sessionID = sessionID
	return nil
}

func (c *AddItemToCartCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *AddItemToCartCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	c.quantity = quantity
	return nil
}
