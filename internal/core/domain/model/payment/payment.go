// Package payment models the append-only payment ledger. Each authorization
// or refund is its own record; a refund never mutates the authorization it
// reverses, so revenue queries must filter by each record's current status.
package payment

import (
	"errors"
	"time"

	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/pkg/errs"
	"boozebuddies/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through one of the factory functions.
var ErrPaymentIsNotConstructed = errors.New("payment must be created via NewAuthorization, NewRefund, or RestorePayment")

// Payment is one event in the ledger, tied to an order and the paying user.
// Records are immutable once written.
type Payment struct {
	id           kernel.UUID
	orderID      kernel.UUID
	userID       kernel.UUID
	amount       decimal.Decimal
	method       string
	status       Status
	refundReason string
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewAuthorization creates an AUTHORIZED ledger record for an order.
func NewAuthorization(
	id kernel.UUID,
	orderID kernel.UUID,
	userID kernel.UUID,
	amount decimal.Decimal,
	method string,
	now time.Time,
) (*Payment, error) {
	return newPayment(id, orderID, userID, amount, method, StatusAuthorized, "", now)
}

// NewRefund creates a REFUNDED ledger record carrying the refund reason.
// The original authorization record is left untouched.
func NewRefund(
	id kernel.UUID,
	orderID kernel.UUID,
	userID kernel.UUID,
	amount decimal.Decimal,
	method string,
	reason string,
	now time.Time,
) (*Payment, error) {
	return newPayment(id, orderID, userID, amount, method, StatusRefunded, reason, now)
}

// RestorePayment rehydrates a ledger record from persistence.
func RestorePayment(
	id kernel.UUID,
	orderID kernel.UUID,
	userID kernel.UUID,
	amount decimal.Decimal,
	method string,
	status Status,
	refundReason string,
	createdAt time.Time,
) (*Payment, error) {
	return newPayment(id, orderID, userID, amount, method, status, refundReason, createdAt)
}

func newPayment(
	id kernel.UUID,
	orderID kernel.UUID,
	userID kernel.UUID,
	amount decimal.Decimal,
	method string,
	status Status,
	refundReason string,
	createdAt time.Time,
) (*Payment, error) {
	p := &Payment{
		refundReason: refundReason,
		createdAt:    createdAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setUserID(userID),
		p.setAmount(amount),
		p.setMethod(method),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the payment was built through a factory function.
func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// ID returns the ledger record's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the paid order's identifier.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// UserID returns the paying user's identifier.
func (p *Payment) UserID() kernel.UUID {
	return p.userID
}

// Amount returns the monetary amount of the event.
func (p *Payment) Amount() decimal.Decimal {
	return p.amount
}

// Method returns the payment method token.
func (p *Payment) Method() string {
	return p.method
}

// Status returns the record's current status.
func (p *Payment) Status() Status {
	return p.status
}

// RefundReason returns why the refund was issued, empty for non-refunds.
func (p *Payment) RefundReason() string {
	return p.refundReason
}

// CreatedAt returns when the ledger event was recorded.
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	p.orderID = orderID
	return nil
}

func (p *Payment) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	p.userID = userID
	return nil
}

func (p *Payment) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidError("amount")
	}
	p.amount = amount
	return nil
}

func (p *Payment) setMethod(method string) error {
	if method == "" {
		return errs.NewValueIsRequiredError("payment method")
	}
	p.method = method
	return nil
}

func (p *Payment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}
