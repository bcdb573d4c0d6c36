// Package notification provides a structured-log implementation of the
// notification trigger points. A real channel (push, SMS, email) can replace
// it behind the same port without touching the lifecycle handlers.
package notification

import (
	"context"
	"log/slog"

	"boozebuddies/internal/core/domain/model/delivery"
	"boozebuddies/internal/core/ports"
)

// SlogSink logs every notification trigger. All methods tolerate nil
// arguments by logging what is known and dropping the rest, so a missing
// delivery or user never aborts the triggering operation.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink creates a sink writing to the given logger.
func NewSlogSink(logger *slog.Logger) *SlogSink {
	return &SlogSink{
		logger: logger.With("component", "notification"),
	}
}

// SendOrderConfirmation records that an order was placed and its delivery
// created.
func (s *SlogSink) SendOrderConfirmation(ctx context.Context, d *delivery.Delivery) {
	if d == nil {
		s.logger.WarnContext(ctx, "order confirmation without delivery")
		return
	}

	s.logger.InfoContext(ctx, "order confirmation",
		"order_id", d.OrderID().String(),
		"delivery_id", d.ID().String(),
		"address", d.Address(),
	)
}

// SendOrderCancellation records that an order was cancelled.
func (s *SlogSink) SendOrderCancellation(ctx context.Context, d *delivery.Delivery) {
	if d == nil {
		s.logger.WarnContext(ctx, "order cancellation without delivery")
		return
	}

	s.logger.InfoContext(ctx, "order cancellation",
		"order_id", d.OrderID().String(),
		"delivery_id", d.ID().String(),
	)
}

// SendDeliveryStatusUpdate records a delivery status notification for a user.
func (s *SlogSink) SendDeliveryStatusUpdate(ctx context.Context, user *ports.User, d *delivery.Delivery) {
	attrs := make([]any, 0, 6)
	if user != nil {
		attrs = append(attrs, "user_id", user.ID.String())
	}
	if d != nil {
		attrs = append(attrs, "delivery_id", d.ID().String(), "status", d.Status().String())
	}

	s.logger.InfoContext(ctx, "delivery status update", attrs...)
}
