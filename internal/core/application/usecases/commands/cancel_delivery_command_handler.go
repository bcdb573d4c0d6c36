package commands

import (
	"context"

	"boozebuddies/internal/pkg/clock"
)

// CancelDeliveryCommandHandler calls off a delivery, recording the reason.
type CancelDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      clock.Clock
}

// NewCancelDeliveryCommandHandler creates a handler for delivery cancellation.
func NewCancelDeliveryCommandHandler(uowFactory DeliveryUoWFactory, clk clock.Clock) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle processes the cancellation command.
func (h *CancelDeliveryCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryCommand) error {
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

	aggregate, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(cmd.Reason(), h.clock.Now()); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
