package commands

import (
	"context"

	"boozebuddies/internal/core/domain/model/delivery"
	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/metrics"
	"boozebuddies/internal/pkg/clock"
)

// AssignDriverCommandHandler binds a driver to an order atomically: the order
// records the driver, the paired delivery moves to Assigned (created first if
// the order somehow has none), and the driver becomes unavailable for further
// dispatch.
type AssignDriverCommandHandler struct {
	uowFactory DispatchUoWFactory
	clock      clock.Clock
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(uowFactory DispatchUoWFactory, clk clock.Clock) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle processes the assignment command.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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

	assignee, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	now := h.clock.Now()
	if err = aggregate.AssignDriver(assignee.ID(), now); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	paired, err := uow.DeliveryRepository().GetByOrderID(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	if paired == nil {
		paired, err = delivery.NewDelivery(kernel.NewUUID(), aggregate.ID(), aggregate.DeliveryAddress(), now)
		if err != nil {
			return err
		}
		if err = paired.Assign(assignee.ID(), now); err != nil {
			return err
		}
		if err = uow.DeliveryRepository().Add(ctx, paired); err != nil {
			return err
		}
	} else {
		if err = paired.Assign(assignee.ID(), now); err != nil {
			return err
		}
		if err = uow.DeliveryRepository().Update(ctx, paired); err != nil {
			return err
		}
	}

	assignee.SetAvailability(false, now)
	if err = uow.DriverRepository().Update(ctx, assignee); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.DeliveriesAssignedTotal.Inc()
	return nil
}
