package commands

import (
	"context"

	"boozebuddies/internal/core/ports"
	"boozebuddies/internal/pkg/clock"
)

// CancelOrderCommandHandler cancels an order and refunds its payment.
//
// The cancellability check runs before any write or refund call, so a cancel
// on an already-cancelled or in-preparation order fails with no side effects.
// That check is also what makes refunds at-most-once per order: a retried
// cancel fails the predicate instead of double-refunding.
type CancelOrderCommandHandler struct {
	uowFactory    OrderDeliveryUoWFactory
	payments      ports.PaymentOrchestrator
	notifications ports.NotificationSink
	clock         clock.Clock
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderDeliveryUoWFactory,
	payments ports.PaymentOrchestrator,
	notifications ports.NotificationSink,
	clk clock.Clock,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory:    uowFactory,
		payments:      payments,
		notifications: notifications,
		clock:         clk,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(h.clock.Now()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if _, err = h.payments.Refund(ctx, aggregate, cancelRefundReason); err != nil {
		return err
	}

	paired, err := uow.DeliveryRepository().GetByOrderID(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifications.SendOrderCancellation(ctx, paired)
	return nil
}
