package services

import (
	"context"

	"boozebuddies/internal/core/domain/model/order"
	"boozebuddies/internal/core/ports"
	"boozebuddies/internal/pkg/clock"
)

// OrderValidator enforces creation-time invariants on a submitted order and,
// once every check passes, stamps the order's line items and timestamps.
//
// Checks run in a fixed sequence so the caller always receives the first
// violation:
//  1. owning user present
//  2. merchant present
//  3. at least one line item
//  4. every referenced product resolvable in the catalog
//  5. if any product is alcoholic, the user's current directory record must
//     be age-verified (the record is re-fetched, not trusted from the order;
//     non-alcohol orders never trigger the lookup)
//
// No order state is mutated until all five checks pass.
type OrderValidator struct {
	catalog ports.ProductCatalog
	users   ports.UserDirectory
	clock   clock.Clock
}

// NewOrderValidator creates an OrderValidator with its collaborators.
func NewOrderValidator(catalog ports.ProductCatalog, users ports.UserDirectory, clk clock.Clock) OrderValidator {
	return OrderValidator{
		catalog: catalog,
		users:   users,
		clock:   clk,
	}
}

// Validate runs the check sequence against the order. On success it stamps
// each item with its 1-based line number, the product's display name, and the
// computed subtotal, then finalizes the order's timestamps and total.
func (v OrderValidator) Validate(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := o.UserID().Validate(); err != nil {
		return order.ErrUserIsRequired
	}
	if err := o.MerchantID().Validate(); err != nil {
		return order.ErrMerchantIsRequired
	}

	items := o.Items()
	if len(items) == 0 {
		return order.ErrEmptyOrder
	}

	products := make([]*ports.Product, 0, len(items))
	containsAlcohol := false
	for _, item := range items {
		product, err := v.catalog.GetProductByID(ctx, item.ProductID())
		if err != nil {
			return err
		}
		if product == nil {
			return order.NewProductNotFoundError(item.ProductID())
		}

		products = append(products, product)
		if product.IsAlcohol {
			containsAlcohol = true
		}
	}

	if containsAlcohol {
		user, err := v.users.FindByID(ctx, o.UserID())
		if err != nil {
			return err
		}
		if user == nil || !user.AgeVerified {
			return order.ErrAgeVerificationRequired
		}
	}

	for i, item := range items {
		if err := item.Stamp(i+1, products[i].Name, products[i].UnitPrice); err != nil {
			return err
		}
	}

	o.Finalize(v.clock.Now())
	return nil
}
