package order

import (
	"errors"
	"fmt"

	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/pkg/errs"
	"boozebuddies/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Item is a line within an order: a product reference, a quantity, and the
// unit price captured at order time. Once creation-time validation stamps the
// line (1-based line number, product name snapshot, subtotal) the item is
// never mutated again.
type Item struct {
	lineNo    int
	productID kernel.UUID
	name      string
	quantity  int
	unitPrice decimal.Decimal
	subtotal  decimal.Decimal

	guard guard.ConstructorGuard
}

// NewItem creates an unstamped line item as submitted by the client.
// Quantity must be positive; unitPrice may be zero, in which case the
// creation-time validation adopts the catalog price during stamping.
func NewItem(productID kernel.UUID, quantity int, unitPrice decimal.Decimal) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem rehydrates a stamped line item from persistence.
func RestoreItem(
	lineNo int,
	productID kernel.UUID,
	name string,
	quantity int,
	unitPrice decimal.Decimal,
	subtotal decimal.Decimal,
) (*Item, error) {
	item, err := NewItem(productID, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	item.lineNo = lineNo
	item.name = name
	item.subtotal = subtotal
	return item, nil
}

// Validate ensures the item was built through NewItem or RestoreItem.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// LineNo returns the 1-based position of the item within its order.
// Zero until the item has been stamped.
func (i *Item) LineNo() int {
	return i.lineNo
}

// ProductID returns the referenced product's identifier.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the display name copied from the product at stamping time.
func (i *Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price captured at order time.
func (i *Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Subtotal returns quantity times unit price, computed at stamping time.
func (i *Item) Subtotal() decimal.Decimal {
	return i.subtotal
}

// Stamp finalizes the line at creation time: assigns its 1-based position,
// snapshots the product's display name, adopts the catalog price when the
// submitted unit price was absent, and computes the subtotal.
func (i *Item) Stamp(lineNo int, productName string, catalogPrice decimal.Decimal) error {
	if lineNo < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"lineNo", fmt.Errorf("%d is not a positive line number", lineNo))
	}

	i.lineNo = lineNo
	i.name = productName
	if i.unitPrice.IsZero() {
		i.unitPrice = catalogPrice
	}
	i.subtotal = i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice", fmt.Errorf("%s is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}
