package commands

import (
	"context"

	"boozebuddies/internal/pkg/clock"
)

// UpdateAgeVerificationCommandHandler records the at-the-door ID check on a
// delivery. Truncation of the ID number to its last 4 characters happens in
// the aggregate, so the full number never reaches persistence.
type UpdateAgeVerificationCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      clock.Clock
}

// NewUpdateAgeVerificationCommandHandler creates a handler for age-check recording.
func NewUpdateAgeVerificationCommandHandler(uowFactory DeliveryUoWFactory, clk clock.Clock) UpdateAgeVerificationCommandHandler {
	return UpdateAgeVerificationCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle processes the age-check command.
func (h *UpdateAgeVerificationCommandHandler) Handle(ctx context.Context, cmd UpdateAgeVerificationCommand) error {
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

	if err = aggregate.VerifyAge(cmd.Verified(), cmd.IDType(), cmd.IDNumber(), h.clock.Now()); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
