package payment

import (
	"fmt"

	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/pkg/errs"
)

// AlreadyAuthorizedError indicates an authorization was requested for an
// order that already holds an authorized payment.
type AlreadyAuthorizedError struct {
	OrderID kernel.UUID
}

func (e *AlreadyAuthorizedError) Error() string {
	return fmt.Sprintf("payment already authorized for order %s", e.OrderID)
}

func (e *AlreadyAuthorizedError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

// NewAlreadyAuthorizedError creates an AlreadyAuthorizedError for the order.
func NewAlreadyAuthorizedError(orderID kernel.UUID) *AlreadyAuthorizedError {
	return &AlreadyAuthorizedError{OrderID: orderID}
}

// NoAuthorizedPaymentError indicates a refund was requested for an order with
// no authorized payment to reverse.
type NoAuthorizedPaymentError struct {
	OrderID kernel.UUID
}

func (e *NoAuthorizedPaymentError) Error() string {
	return fmt.Sprintf("no authorized payment found for order %s", e.OrderID)
}

func (e *NoAuthorizedPaymentError) Unwrap() error {
	return errs.ErrObjectNotFound
}

// NewNoAuthorizedPaymentError creates a NoAuthorizedPaymentError for the order.
func NewNoAuthorizedPaymentError(orderID kernel.UUID) *NoAuthorizedPaymentError {
	return &NoAuthorizedPaymentError{OrderID: orderID}
}
