package queries

import (
	"context"

	"foodorder/internal/core/ports"
)

// GetCartQueryHandler reads the cart from the session-keyed cart store.
// Unlike the other query handlers this one does not touch the database;
// carts live in the store until checkout turns them into orders.
type GetCartQueryHandler struct {
	cartStore ports.CartStore
}

// NewGetCartQueryHandler creates a handler for cart queries.
func NewGetCartQueryHandler(cartStore ports.CartStore) GetCartQueryHandler {
	return GetCartQueryHandler{cartStore: cartStore}
}

// Handle executes the query and returns the cart's lines and total.
// A session with no cart yet yields an empty response, not an error.
func (h GetCartQueryHandler) Handle(
	ctx context.Context,
	query GetCartQuery,
) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	currentCart, err := h.cartStore.Get(ctx, query.SessionID())
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	response := GetCartQueryResponse{
		SessionID: query.SessionID(),
		Lines:     make([]GetCartQueryLine, 0, len(currentCart.Lines())),
		Total:     currentCart.Total(),
	}

	for _, line := range currentCart.Lines() {
		response.Lines = append(response.Lines, GetCartQueryLine{
			MenuItemID: line.MenuItemID(),
			Name:       line.Name(),
			Price:      line.Price(),
			Quantity:   line.Quantity(),
			Subtotal:   line.Subtotal(),
		})
	}

	return response, nil
}
