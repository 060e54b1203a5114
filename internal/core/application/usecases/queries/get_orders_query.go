package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/identity"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves placed orders, scoped by the requesting identity.
// An administrator sees every order; an authenticated customer sees only
// their own; a guest is rejected by the handler.
//
// Example:
//
//	query := NewGetOrdersQuery(actor)
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get orders: %w", err)
//	}
//
//	for _, order := range orders {
//	    fmt.Printf("%s %s %s\n", order.ID, order.Status, order.Total)
//	}
type GetOrdersQuery struct {
	actor identity.Identity

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for orders visible to the given actor.
func NewGetOrdersQuery(actor identity.Identity) GetOrdersQuery {
	return GetOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Actor returns the identity requesting the orders.
func (q GetOrdersQuery) Actor() identity.Identity {
	return q.actor
}

// GetOrdersQueryLine represents one order line for display.
type GetOrdersQueryLine struct {
	MenuItemID kernel.UUID
	Name       string
	Price      kernel.Money
	Quantity   int
}

// GetOrdersQueryResponse represents one placed order for display.
type GetOrdersQueryResponse struct {
	ID         kernel.UUID
	CustomerID *kernel.UUID
	Lines      []GetOrdersQueryLine
	Total      kernel.Money
	Status     string
	CreatedAt  time.Time
}
