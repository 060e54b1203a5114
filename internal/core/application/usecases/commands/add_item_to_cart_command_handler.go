package commands

import (
	"context"

	"foodorder/internal/core/ports"
)

// AddItemToCartCommandHandler handles the business logic for putting menu
// items into carts. It resolves the item against the catalog so the cart
// line carries a name/price snapshot taken at add-time.
type AddItemToCartCommandHandler struct {
	menuRepository ports.MenuRepository
	cartStore      ports.CartStore
}

// NewAddItemToCartCommandHandler creates a handler for cart-add operations.
// Requires the catalog for item resolution and the cart store for mutation.
func NewAddItemToCartCommandHandler(
	menuRepository ports.MenuRepository,
	cartStore ports.CartStore,
) AddItemToCartCommandHandler {
	return AddItemToCartCommandHandler{
		menuRepository: menuRepository,
		cartStore:      cartStore,
	}
}

// Handle processes the add-to-cart command. Resolves the menu item and asks
// the cart store to apply the add atomically for the session. An unknown
// item id surfaces as errs.ObjectNotFoundError; the cart is untouched on any
// failure.
func (h AddItemToCartCommandHandler) Handle(ctx context.Context, cmd AddItemToCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := h.menuRepository.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	return h.cartStore.AddItem(ctx, cmd.SessionID(), item, cmd.Quantity())
}
