package ports

import (
	"context"

	"boozebuddies/internal/core/domain/model/delivery"
	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/core/domain/model/order"
	"boozebuddies/internal/core/domain/model/payment"

	"github.com/shopspring/decimal"
)

// Product is the catalog's view of a sellable item, as needed for
// creation-time validation and line stamping.
type Product struct {
	ID        kernel.UUID
	Name      string
	UnitPrice decimal.Decimal
	IsAlcohol bool
}

// ProductCatalog resolves product references on incoming order items.
type ProductCatalog interface {
	// GetProductByID returns the product, or nil when the id resolves to
	// nothing. Absence is not an error at this layer; validation turns it
	// into one.
	GetProductByID(ctx context.Context, id kernel.UUID) (*Product, error)
}

// User is the directory's view of a customer, reduced to what the alcohol
// rule needs.
type User struct {
	ID          kernel.UUID
	AgeVerified bool
}

// UserDirectory resolves user records. Validation re-fetches the current
// record here rather than trusting the possibly stale data on the request.
type UserDirectory interface {
	FindByID(ctx context.Context, id kernel.UUID) (*User, error)
}

// MerchantDirectory resolves merchant coordinates for distance-based
// matching. A merchant without coordinates returns nil, which excludes its
// orders from geographic queries rather than erroring.
type MerchantDirectory interface {
	GetLocationByID(ctx context.Context, id kernel.UUID) (*kernel.GeoPoint, error)
}

// PaymentOrchestrator is the contract with the payment side effects of order
// state changes. Calls are synchronous with no internal retries.
type PaymentOrchestrator interface {
	// Authorize places an authorization hold for the order's total using the
	// given method token. A second authorization for the same order fails.
	Authorize(ctx context.Context, o *order.Order, method string) (*payment.Payment, error)

	// Refund reverses the order's authorized payment by appending a new
	// refund record. Fails when no authorized payment exists for the order.
	Refund(ctx context.Context, o *order.Order, reason string) (*payment.Payment, error)
}

// NotificationSink receives the notification trigger points of the order and
// delivery lifecycles. Every method must tolerate nil arguments by doing
// nothing; a missing delivery or user never aborts the triggering operation.
type NotificationSink interface {
	SendOrderConfirmation(ctx context.Context, d *delivery.Delivery)
	SendOrderCancellation(ctx context.Context, d *delivery.Delivery)
	SendDeliveryStatusUpdate(ctx context.Context, user *User, d *delivery.Delivery)
}
