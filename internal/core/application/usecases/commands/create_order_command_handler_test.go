package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"boozebuddies/internal/core/application/usecases/commands"
	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/core/domain/model/order"
	"boozebuddies/internal/core/domain/services"
	"boozebuddies/internal/core/ports"
	"boozebuddies/internal/pkg/clock"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2026, 8, 15, 19, 0, 0, 0, time.UTC)

func newCreateHandler(
	factory commands.OrderDeliveryUoWFactory,
	catalog *MockProductCatalog,
	users *MockUserDirectory,
	payments *MockPaymentOrchestrator,
	notifications *MockNotificationSink,
) commands.CreateOrderCommandHandler {
	fixed := clock.NewFixed(createdAt)
	validator := services.NewOrderValidator(catalog, users, fixed)
	return commands.NewCreateOrderCommandHandler(factory, validator, payments, notifications, fixed)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	// End to end: two lines (2 x $10.00 and 3 x $15.00) at a non-alcohol
	// merchant come out at $65.00, Pending, with a Pending paired delivery
	// and one confirmation notification.
	ctx := context.Background()
	beerID := kernel.NewUUID()
	sodaID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"50 Cask Street", "tok_visa",
		[]commands.ItemInput{
			{ProductID: beerID, Quantity: 2, UnitPrice: decimal.RequireFromString("10.00")},
			{ProductID: sodaID, Quantity: 3, UnitPrice: decimal.RequireFromString("15.00")},
		},
		decimal.Zero,
	)
	require.NoError(t, err)

	catalog := new(MockProductCatalog)
	users := new(MockUserDirectory)
	catalog.On("GetProductByID", ctx, beerID).Return(&ports.Product{
		ID: beerID, Name: "Root Beer", UnitPrice: decimal.RequireFromString("10.00"), IsAlcohol: false,
	}, nil).Once()
	catalog.On("GetProductByID", ctx, sodaID).Return(&ports.Product{
		ID: sodaID, Name: "Club Soda", UnitPrice: decimal.RequireFromString("15.00"), IsAlcohol: false,
	}, nil).Once()

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	payments := new(MockPaymentOrchestrator)
	notifications := new(MockNotificationSink)
	uow := new(MockOrderDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		payments.On("Authorize", mock.Anything, mock.AnythingOfType("*order.Order"), "tok_visa").Return(nil, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Add", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifications.On("SendOrderConfirmation", ctx, mock.AnythingOfType("*delivery.Delivery")).Once()

	factory := new(MockOrderDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateHandler(factory, catalog, users, payments, notifications)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, created.Total().Equal(decimal.RequireFromString("65.00")),
		"expected 65.00, got %s", created.Total())
	assert.Equal(t, order.StatusPending, created.Status())
	assert.Equal(t, createdAt, created.CreatedAt())
	users.AssertNotCalled(t, "FindByID")
	orderRepo.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
	payments.AssertExpectations(t)
	notifications.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AgeVerificationFailure(t *testing.T) {
	// An unverified user ordering alcohol is rejected before any
	// transaction is opened: nothing persisted, nothing authorized.
	ctx := context.Background()
	ginID := kernel.NewUUID()
	userID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), userID, kernel.NewUUID(),
		"50 Cask Street", "tok_visa",
		[]commands.ItemInput{{ProductID: ginID, Quantity: 1, UnitPrice: decimal.Zero}},
		decimal.Zero,
	)
	require.NoError(t, err)

	catalog := new(MockProductCatalog)
	users := new(MockUserDirectory)
	catalog.On("GetProductByID", ctx, ginID).Return(&ports.Product{
		ID: ginID, Name: "London Dry Gin", UnitPrice: decimal.RequireFromString("22.00"), IsAlcohol: true,
	}, nil).Once()
	users.On("FindByID", ctx, userID).Return(&ports.User{ID: userID, AgeVerified: false}, nil).Once()

	payments := new(MockPaymentOrchestrator)
	notifications := new(MockNotificationSink)
	factory := new(MockOrderDeliveryUoWFactory)

	h := newCreateHandler(factory, catalog, users, payments, notifications)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrAgeVerificationRequired)
	factory.AssertNotCalled(t, "Create")
	payments.AssertNotCalled(t, "Authorize")
	notifications.AssertNotCalled(t, "SendOrderConfirmation")
}

func TestCreateOrderCommandHandler_Handle_AuthorizeFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	sodaID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"50 Cask Street", "tok_visa",
		[]commands.ItemInput{{ProductID: sodaID, Quantity: 1, UnitPrice: decimal.RequireFromString("3.00")}},
		decimal.Zero,
	)
	require.NoError(t, err)

	catalog := new(MockProductCatalog)
	users := new(MockUserDirectory)
	catalog.On("GetProductByID", ctx, sodaID).Return(&ports.Product{
		ID: sodaID, Name: "Club Soda", UnitPrice: decimal.RequireFromString("3.00"), IsAlcohol: false,
	}, nil).Once()

	orderRepo := new(MockOrderRepository)
	payments := new(MockPaymentOrchestrator)
	notifications := new(MockNotificationSink)
	uow := new(MockOrderDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		payments.On("Authorize", mock.Anything, mock.AnythingOfType("*order.Order"), "tok_visa").
			Return(nil, errors.New("card declined")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateHandler(factory, catalog, users, payments, notifications)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", ctx)
	notifications.AssertNotCalled(t, "SendOrderConfirmation")
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	ctx := context.Background()
	factory := new(MockOrderDeliveryUoWFactory)
	h := newCreateHandler(factory, new(MockProductCatalog), new(MockUserDirectory),
		new(MockPaymentOrchestrator), new(MockNotificationSink))

	_, err := h.Handle(ctx, commands.CreateOrderCommand{})

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestNewCreateOrderCommand_Validation(t *testing.T) {
	t.Run("requires_address", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"", "tok", nil, decimal.Zero)
		require.ErrorIs(t, err, commands.ErrDeliveryAddressIsRequired)
	})

	t.Run("requires_payment_method", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"addr", "", nil, decimal.Zero)
		require.ErrorIs(t, err, commands.ErrPaymentMethodIsRequired)
	})
}
