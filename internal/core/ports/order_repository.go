package ports

import (
	"context"

	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate together with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. Implementations must
	// apply optimistic-concurrency checks so racing writers cannot lose
	// updates; a version conflict surfaces as errs.VersionIsInvalidError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstAvailableForAssignment retrieves the oldest order that is
	// still open and has no driver bound, or nil when none is waiting.
	GetFirstAvailableForAssignment(ctx context.Context) (*order.Order, error)

	// GetAllAvailableForAssignment retrieves every open order without a
	// driver. Open means Pending, Confirmed, Preparing, or ReadyForPickup.
	GetAllAvailableForAssignment(ctx context.Context) ([]*order.Order, error)
}
