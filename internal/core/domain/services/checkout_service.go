package services

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/identity"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

var (
	// ErrEmptyCart is returned when checkout is attempted on a cart with no
	// lines. The cart is left exactly as it was: empty.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidCartState is returned when a cart line fails re-validation at
	// checkout time. This is a defensive guard against a corrupted cart
	// store, not a normal-path failure.
	ErrInvalidCartState = errors.New("cart is in an invalid state")
)

// CheckoutService is the domain service that converts a cart into an order.
// It owns the snapshot step of the checkout transaction: re-validating every
// cart line and producing an immutable Order ready for persistence.
//
// Business rules:
//   - An empty cart cannot be checked out
//   - Every line must carry a non-empty name and a positive quantity; a line
//     that does not indicates cart-store corruption and aborts the checkout
//   - The resulting order starts in pending status with a total computed
//     from the snapshotted lines, and references the customer only when the
//     identity is authenticated
//
// The service never mutates the cart. Persist-then-clear sequencing is the
// checkout command handler's responsibility.
type CheckoutService struct{}

// NewCheckoutService creates a new CheckoutService instance.
func NewCheckoutService() CheckoutService {
	return CheckoutService{}
}

// Checkout snapshots the cart into a new pending Order.
//
// Parameters:
//   - orderID: caller-generated identifier, so a retried checkout can reuse it
//   - c: the cart to snapshot (must be valid and non-empty)
//   - actor: whoever is checking out; guests produce orders without a
//     customer reference
//   - now: the checkout timestamp
//
// Returns ErrEmptyCart for an empty cart and ErrInvalidCartState when any
// line fails re-validation; in both cases no Order is produced.
func (s CheckoutService) Checkout(
	orderID kernel.UUID,
	c *cart.Cart,
	actor identity.Identity,
	now time.Time,
) (*order.Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	cartLines := c.Lines()
	lines := make([]order.Line, 0, len(cartLines))
	for _, cl := range cartLines {
		line, err := order.NewLine(cl.MenuItemID(), cl.Name(), cl.Price(), cl.Quantity())
		if err != nil {
			return nil, errors.Join(ErrInvalidCartState, err)
		}
		lines = append(lines, line)
	}

	return order.NewOrder(orderID, lines, actor.UserID(), now)
}
