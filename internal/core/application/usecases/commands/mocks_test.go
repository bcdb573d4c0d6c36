package commands_test

import (
	"context"
	"time"

	"boozebuddies/internal/core/application/usecases/commands"
	"boozebuddies/internal/core/domain/model/delivery"
	"boozebuddies/internal/core/domain/model/driver"
	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/core/domain/model/order"
	"boozebuddies/internal/core/domain/model/payment"
	"boozebuddies/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetFirstAvailableForAssignment(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetAllAvailableForAssignment(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if o := args.Get(0); o != nil {
		return o.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if d := args.Get(0); d != nil {
		return d.(*delivery.Delivery), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if d := args.Get(0); d != nil {
		return d.(*delivery.Delivery), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDeliveryRepository) GetAllActive(ctx context.Context) ([]*delivery.Delivery, error) {
	args := m.Called(ctx)
	if d := args.Get(0); d != nil {
		return d.([]*delivery.Delivery), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if d := args.Get(0); d != nil {
		return d.(*driver.Driver), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDriverRepository) GetAllAvailable(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if d := args.Get(0); d != nil {
		return d.([]*driver.Driver), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOrderDeliveryUoW struct{ mock.Mock }

func (m *MockOrderDeliveryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderDeliveryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderDeliveryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderDeliveryUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderDeliveryUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockOrderDeliveryUoWFactory struct{ mock.Mock }

func (m *MockOrderDeliveryUoWFactory) Create() commands.OrderDeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderDeliveryUoW)
}

type MockDeliveryUoW struct{ mock.Mock }

func (m *MockDeliveryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockDispatchUoW struct{ mock.Mock }

func (m *MockDispatchUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDispatchUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDispatchUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDispatchUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockDispatchUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockDispatchUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchUoW)
}

type MockPaymentOrchestrator struct{ mock.Mock }

func (m *MockPaymentOrchestrator) Authorize(ctx context.Context, o *order.Order, method string) (*payment.Payment, error) {
	args := m.Called(ctx, o, method)
	if p := args.Get(0); p != nil {
		return p.(*payment.Payment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPaymentOrchestrator) Refund(ctx context.Context, o *order.Order, reason string) (*payment.Payment, error) {
	args := m.Called(ctx, o, reason)
	if p := args.Get(0); p != nil {
		return p.(*payment.Payment), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockNotificationSink struct{ mock.Mock }

func (m *MockNotificationSink) SendOrderConfirmation(ctx context.Context, d *delivery.Delivery) {
	m.Called(ctx, d)
}

func (m *MockNotificationSink) SendOrderCancellation(ctx context.Context, d *delivery.Delivery) {
	m.Called(ctx, d)
}

func (m *MockNotificationSink) SendDeliveryStatusUpdate(ctx context.Context, user *ports.User, d *delivery.Delivery) {
	m.Called(ctx, user, d)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) GetProductByID(ctx context.Context, id kernel.UUID) (*ports.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*ports.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUserDirectory struct{ mock.Mock }

func (m *MockUserDirectory) FindByID(ctx context.Context, id kernel.UUID) (*ports.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*ports.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockMerchantDirectory struct{ mock.Mock }

func (m *MockMerchantDirectory) GetLocationByID(ctx context.Context, id kernel.UUID) (*kernel.GeoPoint, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*kernel.GeoPoint), args.Error(1)
	}
	return nil, args.Error(1)
}

// Shared fixture helpers.

func restoredOrder(status order.Status, total string, ts time.Time) *order.Order {
	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		"50 Cask Street", "tok_visa", nil,
		decimal.RequireFromString(total), status, nil, ts, ts, 1,
	)
	if err != nil {
		panic(err)
	}
	return o
}

func pendingDelivery(orderID kernel.UUID, ts time.Time) *delivery.Delivery {
	d, err := delivery.NewDelivery(kernel.NewUUID(), orderID, "50 Cask Street", ts)
	if err != nil {
		panic(err)
	}
	return d
}
