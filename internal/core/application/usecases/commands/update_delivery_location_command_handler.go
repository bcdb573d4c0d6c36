package commands

import (
	"context"

	"boozebuddies/internal/pkg/clock"
)

// UpdateDeliveryLocationCommandHandler records a courier location ping on a
// delivery.
type UpdateDeliveryLocationCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      clock.Clock
}

// NewUpdateDeliveryLocationCommandHandler creates a handler for location pings.
func NewUpdateDeliveryLocationCommandHandler(uowFactory DeliveryUoWFactory, clk clock.Clock) UpdateDeliveryLocationCommandHandler {
	return UpdateDeliveryLocationCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle processes the location ping command.
func (h *UpdateDeliveryLocationCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryLocationCommand) error {
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

	if err = aggregate.UpdateLocation(cmd.Location(), h.clock.Now()); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
