package ports

import (
	"context"

	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for the append-only
// payment ledger. There is no Update: records are immutable once written.
type PaymentRepository interface {
	// Add appends a ledger record.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// GetByOrderID retrieves every ledger record for an order, oldest first.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) ([]*payment.Payment, error)

	// GetAuthorizedByOrderID retrieves the order's record currently in
	// Authorized status, or nil when none exists.
	GetAuthorizedByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)
}
