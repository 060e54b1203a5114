package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and listing orders. Implementers
// translate their storage-level not-found conditions into
// errs.ObjectNotFoundError so callers can classify with errors.Is.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Only the status can change after creation, but the whole aggregate is
	// handed over so the repository decides what to write.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order, newest first (reverse-chronological by
	// creation timestamp). Used by the admin dashboard.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllForCustomer retrieves a customer's own orders, newest first.
	GetAllForCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)
}
