package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/identity"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
)

// CheckoutCommand represents a request to convert a session's cart into a
// durable order.
//
// The order id is generated by the caller and carried in the command so that
// a retried checkout can reuse it; the core itself never retries.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(kernel.NewUUID(), sessionID, actor)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // ErrEmptyCart and ErrInvalidCartState map to bad-request;
//	    // anything else left the cart untouched for a retry
//	}
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	sessionID string
	actor     identity.Identity

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to check out a session's cart.
// Validates the order id and session id; the actor may be a guest.
func NewCheckoutCommand(orderID kernel.UUID, sessionID string, actor identity.Identity) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSessionID(sessionID),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SessionID returns the cart session being checked out.
func (c CheckoutCommand) SessionID() string {
	return c.sessionID
}

// Actor returns the identity placing the order.
func (c CheckoutCommand) Actor() identity.Identity {
	return c.actor
}

func (c *CheckoutCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("sessionID")
	}

	c.sessionID = sessionID
	return nil
}
