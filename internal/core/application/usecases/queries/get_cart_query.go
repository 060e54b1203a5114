package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetCartQueryIsNotConstructed = errors.New(
		"GetCartQuery must be created via NewGetCartQuery constructor",
	)
)

// GetCartQuery retrieves the current cart for one browsing session.
//
// Example:
//
//	query, err := NewGetCartQuery(sessionID)
//	if err != nil {
//	    return err
//	}
//
//	cart, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load cart: %w", err)
//	}
//
//	fmt.Printf("%d lines, total %s\n", len(cart.Lines), cart.Total)
type GetCartQuery struct { //nolint:recvcheck //using for validation
	sessionID string

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the given session's cart.
func NewGetCartQuery(sessionID string) (GetCartQuery, error) {
	query := GetCartQuery{guard: guard.NewConstructorGuard()}

	if err := query.setSessionID(sessionID); err != nil {
		return GetCartQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCartQueryIsNotConstructed if validation fails.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// SessionID returns the session whose cart is requested.
func (q GetCartQuery) SessionID() string {
	return q.sessionID
}

func (q *GetCartQuery) setSessionID(sessionID string) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("sessionID")
	}

	q.sessionID = sessionID
	return nil
}

// GetCartQueryLine represents one cart line for display.
type GetCartQueryLine struct {
	MenuItemID kernel.UUID
	Name       string
	Price      kernel.Money
	Quantity   int
	Subtotal   kernel.Money
}

// GetCartQueryResponse represents the cart contents and running total.
type GetCartQueryResponse struct {
	SessionID string
	Lines     []GetCartQueryLine
	Total     kernel.Money
}
