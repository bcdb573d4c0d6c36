package commands

import (
	"context"

	"boozebuddies/internal/core/domain/model/delivery"
	"boozebuddies/internal/pkg/clock"
)

// UpdateDeliveryStatusCommandHandler moves a delivery through its fulfillment
// states. Pickup and handoff timestamps are stamped by the aggregate on first
// entry into the corresponding status.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      clock.Clock
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery status changes.
func NewUpdateDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory, clk clock.Clock) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle processes the status change command.
func (h *UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	target, err := delivery.ParseStatus(cmd.StatusName())
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

	aggregate, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateStatus(target, h.clock.Now()); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
