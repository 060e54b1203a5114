package ports

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/menu"
)

// CartStore holds the live carts, keyed by session identifier. Carts are
// transient: they exist from the first add until checkout clears them or the
// expiry policy drops them.
//
// Implementations must make each operation atomic per session: two
// concurrent AddItem calls for the same session may interleave in either
// order but must both be applied, and Get must never observe a half-applied
// mutation. Serialization across different sessions is not required.
type CartStore interface {
	// AddItem puts quantity units of the item into the session's cart,
	// creating the cart on first use. Repeated adds of the same item
	// accumulate quantity on a single line.
	AddItem(ctx context.Context, sessionID string, item *menu.Item, quantity int) error

	// Get returns a snapshot of the session's cart. A session with no cart
	// yields a valid empty cart, not an error. Mutating the returned
	// aggregate does not affect the store.
	Get(ctx context.Context, sessionID string) (*cart.Cart, error)

	// Clear empties the session's cart. Clearing an absent or already empty
	// cart is a no-op.
	Clear(ctx context.Context, sessionID string) error

	// PurgeIdle drops carts that have not been touched for at least maxIdle
	// and reports how many were removed. Stores whose backend already expires
	// entries natively may return 0 without scanning.
	PurgeIdle(ctx context.Context, maxIdle time.Duration) (int, error)
}
