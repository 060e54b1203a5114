// Package cartstore provides a Redis-backed implementation of the
// session-keyed cart store. Carts are stored as JSON blobs under one key per
// session; per-session TTL doubles as abandoned-cart expiry.
package cartstore

import (
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
)

// CartDTO is the JSON document stored under the session's cart key.
type CartDTO struct {
	SessionID string        `json:"session_id"`
	Lines     []CartLineDTO `json:"lines"`
}

// CartLineDTO is one priced line inside the stored cart document.
type CartLineDTO struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
}

// fromDomain converts a cart aggregate to its stored representation.
func fromDomain(aggregate *cart.Cart) CartDTO {
	lines := aggregate.Lines()
	dto := CartDTO{
		SessionID: aggregate.SessionID(),
		Lines:     make([]CartLineDTO, 0, len(lines)),
	}

	for _, line := range lines {
		dto.Lines = append(dto.Lines, CartLineDTO{
			MenuItemID: line.MenuItemID().String(),
			Name:       line.Name(),
			PriceCents: line.Price().Cents(),
			Quantity:   line.Quantity(),
		})
	}

	return dto
}

// toDomain converts a stored cart document back to the aggregate.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	lines := make([]cart.Line, 0, len(dto.Lines))

	for _, lineDTO := range dto.Lines {
		menuItemID, err := kernel.UUIDFromString(lineDTO.MenuItemID)
		if err != nil {
			return nil, err
		}

		price, err := kernel.NewMoneyFromCents(lineDTO.PriceCents)
		if err != nil {
			return nil, err
		}

		line, err := cart.NewLine(menuItemID, lineDTO.Name, price, lineDTO.Quantity)
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	return cart.RestoreCart(dto.SessionID, lines)
}
