package commands

import (
	"context"

	"boozebuddies/internal/core/domain/model/delivery"
	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/core/domain/model/order"
	"boozebuddies/internal/core/domain/services"
	"boozebuddies/internal/core/ports"
	"boozebuddies/internal/pkg/clock"
)

// CreateOrderCommandHandler handles order placement: creation-time
// validation, persistence, payment authorization, the paired delivery, and
// the confirmation notification.
//
// Sequence on success: validate → persist order → authorize payment → persist
// paired delivery in Pending status → commit → confirmation notification.
// Any failure before commit rolls the transaction back, so validation and
// authorization failures leave the stores untouched.
type CreateOrderCommandHandler struct {
	uowFactory    OrderDeliveryUoWFactory
	validator     services.OrderValidator
	payments      ports.PaymentOrchestrator
	notifications ports.NotificationSink
	clock         clock.Clock
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory OrderDeliveryUoWFactory,
	validator services.OrderValidator,
	payments ports.PaymentOrchestrator,
	notifications ports.NotificationSink,
	clk clock.Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:    uowFactory,
		validator:     validator,
		payments:      payments,
		notifications: notifications,
		clock:         clk,
	}
}

// Handle processes the order placement command and returns the persisted
// order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		item, err := order.NewItem(input.ProductID, input.Quantity, input.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.UserID(),
		cmd.MerchantID(),
		cmd.DeliveryAddress(),
		cmd.PaymentMethod(),
		items,
		cmd.Total(),
	)
	if err != nil {
		return nil, err
	}

	if err = h.validator.Validate(ctx, newOrder); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if _, err = h.payments.Authorize(ctx, newOrder, cmd.PaymentMethod()); err != nil {
		return nil, err
	}

	paired, err := delivery.NewDelivery(kernel.NewUUID(), newOrder.ID(), newOrder.DeliveryAddress(), h.clock.Now())
	if err != nil {
		return nil, err
	}
	if err = uow.DeliveryRepository().Add(ctx, paired); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifications.SendOrderConfirmation(ctx, paired)
	return newOrder, nil
}
