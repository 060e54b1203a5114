package order

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a placed order: the durable result of a checkout. It is
// the aggregate root that manages the order lifecycle from creation through
// the kitchen workflow to completion or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and at least one line
//   - The total always equals the sum of its own line subtotals, computed
//     once at construction and never re-derived
//   - Lines are immutable snapshots; only the status field ever changes
//   - Status transitions follow the workflow table in Status
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the customer who placed the order (nil for guests)
	customerID *kernel.UUID

	// lines are the checkout-time snapshots of the cart's contents
	lines []Line

	// total is the sum of line subtotals, fixed at creation
	total kernel.Money

	// status is the current state in the kitchen workflow
	status Status

	// createdAt is the checkout timestamp, UTC
	createdAt time.Time

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order from checkout-time line snapshots. The order
// starts in Pending status and its total is computed here, once, as the sum
// of line subtotals.
//
// Parameters:
//   - id: unique identifier, generated by the caller so a retried checkout
//     can reuse it
//   - lines: at least one validated line snapshot
//   - customerID: the customer placing the order, nil for guests
//   - createdAt: the checkout timestamp
func NewOrder(id kernel.UUID, lines []Line, customerID *kernel.UUID, createdAt time.Time) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("lines")
	}
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return nil, err
		}
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	var total kernel.Money
	snapshot := make([]Line, len(lines))
	for i, line := range lines {
		snapshot[i] = line
		total = total.Add(line.Subtotal())
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		lines:         snapshot,
		total:         total,
		status:        Pending,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence, including its stored
// status and total. The status must be inside the enumerated set; the total
// is trusted as stored because it was computed under NewOrder's invariant.
func RestoreOrder(
	id kernel.UUID,
	lines []Line,
	total kernel.Money,
	status Status,
	customerID *kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	restored, err := NewOrder(id, lines, customerID, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	restored.status = status
	restored.total = total
	return restored, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. Call it when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the customer who placed the order, or nil for a guest.
func (o *Order) CustomerID() *kernel.UUID {
	if o.customerID == nil {
		return nil
	}
	id := *o.customerID
	return &id
}

// Lines returns a copy of the order's line snapshots in their original order.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Total returns the order total fixed at checkout time.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the checkout timestamp in UTC.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus moves the order to the next workflow status.
//
// Returns:
//   - nil when the transition is legal; the order now carries next
//   - ErrInvalidStatus when next is outside the enumerated set
//   - ErrIllegalStatusTransition when the workflow forbids the move; the
//     order's status is left unchanged
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}
