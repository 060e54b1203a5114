package ports

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// OrderEventPublisher notifies the kitchen side about order lifecycle events.
// Publishing happens strictly after the corresponding database commit and is
// best-effort: a publish failure is logged by the caller, never surfaced to
// the customer, and never rolls anything back.
type OrderEventPublisher interface {
	// PublishOrderPlaced announces a freshly checked-out order.
	PublishOrderPlaced(ctx context.Context, o *order.Order) error

	// PublishOrderStatusChanged announces an administrator-driven status change.
	PublishOrderStatusChanged(ctx context.Context, o *order.Order, previous order.Status) error
}
