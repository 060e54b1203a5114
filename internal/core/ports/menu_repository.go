package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
)

// MenuRepository defines the read-side contract for the catalog.
// The core never writes to the menu; catalog management is someone else's
// system.
type MenuRepository interface {
	// Get resolves a menu-item identifier to its current name/price snapshot.
	// Returns errs.ObjectNotFoundError when no item with that id exists.
	Get(ctx context.Context, id kernel.UUID) (*menu.Item, error)

	// GetAll retrieves the whole menu for display, ordered by category and
	// name.
	GetAll(ctx context.Context) ([]*menu.Item, error)
}
