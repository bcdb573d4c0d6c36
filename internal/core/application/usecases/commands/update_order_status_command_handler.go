package commands

import (
	"context"
	"log/slog"

	"boozebuddies/internal/core/domain/model/delivery"
	"boozebuddies/internal/core/domain/model/order"
	"boozebuddies/internal/core/ports"
	"boozebuddies/internal/pkg/clock"
)

// UpdateOrderStatusCommandHandler advances an order through its lifecycle.
// Illegal transitions are rejected before any persistence. The transition
// into Confirmed additionally notifies the order's user with the paired
// delivery; no other transition fires that notification.
type UpdateOrderStatusCommandHandler struct {
	uowFactory    OrderDeliveryUoWFactory
	users         ports.UserDirectory
	notifications ports.NotificationSink
	clock         clock.Clock
	logger        *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status changes.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderDeliveryUoWFactory,
	users ports.UserDirectory,
	notifications ports.NotificationSink,
	clk clock.Clock,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory:    uowFactory,
		users:         users,
		notifications: notifications,
		clock:         clk,
		logger:        logger,
	}
}

// Handle processes the status change command.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	target, err := order.ParseStatus(cmd.StatusName())
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.TransitionTo(target, h.clock.Now()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	var paired *delivery.Delivery
	if target == order.StatusConfirmed {
		// Read before commit so the notification sees transactional state.
		// A missing delivery is tolerated; the sink ignores nil.
		paired, err = uow.DeliveryRepository().GetByOrderID(ctx, aggregate.ID())
		if err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if target == order.StatusConfirmed {
		user, lookupErr := h.users.FindByID(ctx, aggregate.UserID())
		if lookupErr != nil {
			// The transition is already committed; notify without user
			// details rather than fail, but leave a trace for operators.
			h.logger.WarnContext(ctx, "user lookup failed before confirmation notification",
				"order_id", aggregate.ID().String(),
				"error", lookupErr)
			user = nil
		}
		h.notifications.SendDeliveryStatusUpdate(ctx, user, paired)
	}

	return nil
}
