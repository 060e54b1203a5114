package commands

import (
	"context"
	"log/slog"
	"time"

	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// CheckoutCommandHandler handles the checkout transaction: snapshot the
// cart, persist the order, and only then clear the cart.
//
// The persist-then-clear ordering is the one correctness-critical invariant
// of the whole core. A persistence failure leaves the cart exactly as it was
// so the customer can retry; the cart is never emptied without a durable
// order to show for it.
type CheckoutCommandHandler struct {
	cartStore       ports.CartStore
	uowFactory      OrderUoWFactory
	checkoutService services.CheckoutService
	publisher       ports.OrderEventPublisher
	logger          *slog.Logger
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// The publisher announces placed orders to the kitchen after commit; its
// failures are logged, not surfaced.
func NewCheckoutCommandHandler(
	cartStore ports.CartStore,
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		cartStore:       cartStore,
		uowFactory:      uowFactory,
		checkoutService: services.NewCheckoutService(),
		publisher:       publisher,
		logger:          logger.With("component", "checkout_handler"),
	}
}

// Handle processes the checkout command.
//
// Sequence: read the cart snapshot, build the order through the checkout
// domain service, persist it inside a transaction, and clear the cart only
// after the commit succeeded. Failures before or during commit leave both
// the cart and the order store untouched.
func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	snapshot, err := h.cartStore.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	newOrder, err := h.checkoutService.Checkout(cmd.OrderID(), snapshot, cmd.Actor(), time.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// The order is durable from here on. A failed clear leaves stale lines in
	// the cart but must not fail the checkout: reporting an error would
	// invite a retry and a duplicate order.
	if err = h.cartStore.Clear(ctx, cmd.SessionID()); err != nil {
		h.logger.ErrorContext(ctx, "order persisted but cart clear failed",
			"order_id", cmd.OrderID().String(),
			"session_id", cmd.SessionID(),
			"error", err)
	}

	if h.publisher != nil {
		if err = h.publisher.PublishOrderPlaced(ctx, newOrder); err != nil {
			h.logger.ErrorContext(ctx, "failed to publish order placed event",
				"order_id", cmd.OrderID().String(),
				"error", err)
		}
	}

	return nil
}
