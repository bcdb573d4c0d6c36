package order

import (
	"errors"
	"fmt"

	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("order must be created via NewOrder or RestoreOrder")

	// ErrItemIsNotConstructed is returned when an Item instance was not
	// created through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("order item must be created via NewItem or RestoreItem")

	// ErrUserIsRequired indicates an order was submitted without an owning user.
	ErrUserIsRequired = errs.NewValueIsRequiredError("user")

	// ErrMerchantIsRequired indicates an order was submitted without a merchant.
	ErrMerchantIsRequired = errs.NewValueIsRequiredError("merchant")

	// ErrEmptyOrder indicates an order was submitted with no line items.
	ErrEmptyOrder = errs.NewValueIsRequiredError("order items")

	// ErrAgeVerificationRequired indicates an order contains alcohol but the
	// owning user has not completed age verification.
	ErrAgeVerificationRequired = errors.New("age verification is required for orders containing alcohol")
)

// ProductNotFoundError indicates a line item references a product the catalog
// cannot resolve.
type ProductNotFoundError struct {
	ProductID kernel.UUID
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found: %s", e.ProductID)
}

func (e *ProductNotFoundError) Unwrap() error {
	return errs.ErrObjectNotFound
}

// NewProductNotFoundError creates a ProductNotFoundError for the given product.
func NewProductNotFoundError(productID kernel.UUID) *ProductNotFoundError {
	return &ProductNotFoundError{ProductID: productID}
}

// InvalidTransitionError indicates a requested status change is not a legal
// step in the order lifecycle. It names both statuses so the caller can
// surface a precise message.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order status transition from %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

// NewInvalidTransitionError creates an InvalidTransitionError for the attempted step.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// CancellationNotAllowedError indicates cancellation was requested for an
// order whose current status forbids it.
type CancellationNotAllowedError struct {
	Status Status
}

func (e *CancellationNotAllowedError) Error() string {
	return fmt.Sprintf("order cannot be cancelled in status %s", e.Status)
}

func (e *CancellationNotAllowedError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

// NewCancellationNotAllowedError creates a CancellationNotAllowedError for the current status.
func NewCancellationNotAllowedError(status Status) *CancellationNotAllowedError {
	return &CancellationNotAllowedError{Status: status}
}
