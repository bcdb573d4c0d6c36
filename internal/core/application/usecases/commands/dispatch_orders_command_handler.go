package commands

import (
	"context"
	"errors"
	"time"

	"boozebuddies/internal/core/domain/model/delivery"
	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/core/domain/services"
	"boozebuddies/internal/core/ports"
	"boozebuddies/internal/metrics"
	"boozebuddies/internal/pkg/clock"
)

// DispatchOrdersCommandHandler performs one automatic assignment pass: the
// oldest unassigned order is matched with the nearest available driver within
// the configured radius of the order's merchant, and the order gets an
// estimated delivery time from the distance heuristic.
//
// Having no waiting order, no merchant coordinates, or no driver in range are
// all normal outcomes: the pass ends without error and without writes.
type DispatchOrdersCommandHandler struct {
	uowFactory DispatchUoWFactory
	merchants  ports.MerchantDirectory
	matcher    services.OrderMatcher
	clock      clock.Clock
}

// NewDispatchOrdersCommandHandler creates a handler for dispatch passes.
func NewDispatchOrdersCommandHandler(
	uowFactory DispatchUoWFactory,
	merchants ports.MerchantDirectory,
	matcher services.OrderMatcher,
	clk clock.Clock,
) DispatchOrdersCommandHandler {
	return DispatchOrdersCommandHandler{
		uowFactory: uowFactory,
		merchants:  merchants,
		matcher:    matcher,
		clock:      clk,
	}
}

// Handle runs one dispatch pass.
func (h *DispatchOrdersCommandHandler) Handle(ctx context.Context, cmd DispatchOrdersCommand) error {
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

	aggregate, err := uow.OrderRepository().GetFirstAvailableForAssignment(ctx)
	if err != nil {
		return err
	}
	if aggregate == nil {
		return nil
	}

	merchantLocation, err := h.merchants.GetLocationByID(ctx, aggregate.MerchantID())
	if err != nil {
		return err
	}
	if merchantLocation == nil {
		return nil
	}

	drivers, err := uow.DriverRepository().GetAllAvailable(ctx)
	if err != nil {
		return err
	}

	assignee, distanceKm, err := h.matcher.FindNearestDriver(drivers, *merchantLocation, cmd.RadiusKm())
	if errors.Is(err, services.ErrDriverNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	now := h.clock.Now()
	if err = aggregate.AssignDriver(assignee.ID(), now); err != nil {
		return err
	}
	eta := now.Add(time.Duration(services.EstimateDeliveryMinutes(distanceKm)) * time.Minute)
	aggregate.SetEstimatedDeliveryTime(eta, now)
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
