package commands

import (
	"context"
	"log/slog"

	"foodorder/internal/core/domain/model/identity"
	"foodorder/internal/core/ports"
)

// ChangeOrderStatusCommandHandler handles administrator-driven order status
// transitions. Every call passes the access guard first: a non-admin actor
// is rejected with identity.ErrUnauthorized before any state is read, and
// the order is left exactly as it was.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status
// transitions. Requires an OrderUoWFactory for transactional persistence.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "order_status_handler"),
	}
}

// Handle processes the status-change command.
//
// Loads the order, asks the aggregate to perform the transition (which
// enforces the workflow table), and persists the result in a transaction.
// An illegal transition or unknown order id rolls back with nothing written.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().IsAdmin() {
		return identity.ErrUnauthorized
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.publisher != nil {
		if err = h.publisher.PublishOrderStatusChanged(ctx, aggregate, previous); err != nil {
			h.logger.ErrorContext(ctx, "failed to publish status change event",
				"order_id", cmd.OrderID().String(),
				"from", previous.String(),
				"to", cmd.Status().String(),
				"error", err)
		}
	}

	return nil
}
