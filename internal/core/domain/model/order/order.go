package order

import (
	"errors"
	"time"

	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/pkg/errs"
	"boozebuddies/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Order is the aggregate root for a purchase. It owns its line items and its
// lifecycle state machine, and carries the monetary total, the optional
// assigned driver, and audit timestamps.
//
// Invariants:
//   - Status transitions follow the machine encoded in Status.CanTransitionTo.
//   - Once computed, the total equals the sum of line subtotals.
//   - Terminal orders are retained, never deleted.
//
// Presence of the owning user, the merchant, and at least one item is
// deliberately NOT enforced here: creation-time validation checks those in a
// defined sequence so callers receive the first violation, not a joined list.
type Order struct {
	id                    kernel.UUID
	userID                kernel.UUID
	merchantID            kernel.UUID
	driverID              *kernel.UUID
	deliveryAddress       string
	paymentMethod         string
	items                 []*Item
	total                 decimal.Decimal
	status                Status
	estimatedDeliveryTime *time.Time
	createdAt             time.Time
	updatedAt             time.Time
	version               int64

	guard guard.ConstructorGuard
}

// NewOrder creates an order in Pending status as submitted by the client,
// before creation-time validation has run. The total may be zero (unset);
// validation computes it from the items if so.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	merchantID kernel.UUID,
	deliveryAddress string,
	paymentMethod string,
	items []*Item,
	total decimal.Decimal,
) (*Order, error) {
	o := &Order{
		userID:     userID,
		merchantID: merchantID,
		items:      items,
		total:      total,
		status:     StatusPending,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	o.paymentMethod = paymentMethod
	return o, nil
}

// RestoreOrder rehydrates an order from persistence without re-running
// creation-time validation.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	merchantID kernel.UUID,
	driverID *kernel.UUID,
	deliveryAddress string,
	paymentMethod string,
	items []*Item,
	total decimal.Decimal,
	status Status,
	estimatedDeliveryTime *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
	version int64,
) (*Order, error) {
	o, err := NewOrder(id, userID, merchantID, deliveryAddress, paymentMethod, items, total)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.driverID = driverID
	o.status = status
	o.estimatedDeliveryTime = estimatedDeliveryTime
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	o.version = version
	return o, nil
}

// Validate ensures the order was built through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the owning user's identifier. May be the zero UUID for an
// order that has not passed creation-time validation.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// MerchantID returns the merchant's identifier.
func (o *Order) MerchantID() kernel.UUID {
	return o.merchantID
}

// DriverID returns the assigned driver's identifier, or nil if unassigned.
func (o *Order) DriverID() *kernel.UUID {
	return o.driverID
}

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// PaymentMethod returns the payment method token supplied at creation.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// Items returns the order's line items.
func (o *Order) Items() []*Item {
	return o.items
}

// Total returns the monetary total. Zero until computed or pre-supplied.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// EstimatedDeliveryTime returns the projected delivery time, or nil when no
// estimate has been made.
func (o *Order) EstimatedDeliveryTime() *time.Time {
	return o.estimatedDeliveryTime
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the optimistic-concurrency version loaded from persistence.
func (o *Order) Version() int64 {
	return o.version
}

// CalculateTotal sums the line subtotals.
func (o *Order) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Finalize completes creation-time setup after all validation checks passed:
// stamps both audit timestamps and, when no total was pre-supplied, computes
// it from the line subtotals. A pre-supplied total is trusted and kept.
func (o *Order) Finalize(now time.Time) {
	o.createdAt = now
	o.updatedAt = now
	if o.total.IsZero() {
		o.total = o.CalculateTotal()
	}
}

// IsValidStatusTransition reports whether moving to target is a legal step
// from the order's current status.
func (o *Order) IsValidStatusTransition(target Status) bool {
	return o.status.CanTransitionTo(target)
}

// TransitionTo applies a status change after checking legality. An illegal
// step returns InvalidTransitionError naming both statuses and leaves the
// order unmodified.
func (o *Order) TransitionTo(target Status, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if !o.IsValidStatusTransition(target) {
		return NewInvalidTransitionError(o.status, target)
	}

	o.status = target
	o.updatedAt = now
	return nil
}

// CanBeCancelled reports whether the order may still be cancelled. Only
// orders that have not yet entered preparation qualify.
func (o *Order) CanBeCancelled() bool {
	return o.status == StatusPending || o.status == StatusConfirmed
}

// Cancel moves the order to Cancelled. Returns CancellationNotAllowedError
// naming the current status when cancellation is no longer permitted, with
// no state change.
func (o *Order) Cancel(now time.Time) error {
	if !o.CanBeCancelled() {
		return NewCancellationNotAllowedError(o.status)
	}

	o.status = StatusCancelled
	o.updatedAt = now
	return nil
}

// AssignDriver binds a driver to the order.
func (o *Order) AssignDriver(driverID kernel.UUID, now time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	o.driverID = &driverID
	o.updatedAt = now
	return nil
}

// SetEstimatedDeliveryTime records a projected delivery time.
func (o *Order) SetEstimatedDeliveryTime(eta time.Time, now time.Time) {
	o.estimatedDeliveryTime = &eta
	o.updatedAt = now
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}
