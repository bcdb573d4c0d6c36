package commands

import (
	"errors"

	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
	ErrPaymentMethodIsRequired   = errors.New("payment method is required")
)

// ItemInput is one requested line of a new order as submitted by the client.
// UnitPrice may be zero; validation then adopts the catalog price.
type ItemInput struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

// CreateOrderCommand represents a request to place a new order. User,
// merchant, and item presence are deliberately not checked here; creation-time
// validation reports those violations in its defined sequence.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	userID          kernel.UUID
	merchantID      kernel.UUID
	deliveryAddress string
	paymentMethod   string
	items           []ItemInput
	total           decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order. The total may
// be zero, in which case it is computed from the items during validation.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	merchantID kernel.UUID,
	deliveryAddress string,
	paymentMethod string,
	items []ItemInput,
	total decimal.Decimal,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		userID:     userID,
		merchantID: merchantID,
		items:      items,
		total:      total,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier minted for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the ordering user's identifier.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// MerchantID returns the merchant's identifier.
func (c CreateOrderCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

// DeliveryAddress returns the destination address.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// PaymentMethod returns the payment method token.
func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

// Items returns the requested lines.
func (c CreateOrderCommand) Items() []ItemInput {
	return c.items
}

// Total returns the client-supplied total, zero when unset.
func (c CreateOrderCommand) Total() decimal.Decimal {
	return c.total
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}
	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method string) error {
	if method == "" {
		return ErrPaymentMethodIsRequired
	}
	c.paymentMethod = method
	return nil
}
