package commands_test

import (
	"context"
	"testing"
	"time"

	"boozebuddies/internal/core/application/usecases/commands"
	"boozebuddies/internal/core/domain/model/delivery"
	"boozebuddies/internal/core/domain/model/driver"
	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/core/domain/model/order"
	"boozebuddies/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var assignedAt = time.Date(2026, 8, 16, 11, 0, 0, 0, time.UTC)

func TestAssignDriverCommandHandler_Handle_ExistingDelivery(t *testing.T) {
	ctx := context.Background()
	aggregate := restoredOrder(order.StatusConfirmed, "40.00", assignedAt.Add(-time.Hour))
	paired := pendingDelivery(aggregate.ID(), assignedAt.Add(-time.Hour))
	assignee, err := driver.NewDriver(kernel.NewUUID(), "Nina", assignedAt.Add(-time.Hour))
	require.NoError(t, err)

	cmd, err := commands.NewAssignDriverCommand(aggregate.ID(), assignee.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockDispatchUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", mock.Anything, assignee.ID()).Return(assignee, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetByOrderID", mock.Anything, aggregate.ID()).Return(paired, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Update", mock.Anything, paired).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Update", mock.Anything, assignee).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDriverCommandHandler(factory, clock.NewFixed(assignedAt))
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, aggregate.DriverID())
	assert.True(t, aggregate.DriverID().IsEqual(assignee.ID()))
	assert.Equal(t, delivery.StatusAssigned, paired.Status())
	assert.False(t, assignee.IsAvailable())
	deliveryRepo.AssertNotCalled(t, "Add")
	uow.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_CreatesMissingDelivery(t *testing.T) {
	ctx := context.Background()
	aggregate := restoredOrder(order.StatusConfirmed, "40.00", assignedAt.Add(-time.Hour))
	assignee, err := driver.NewDriver(kernel.NewUUID(), "Nina", assignedAt.Add(-time.Hour))
	require.NoError(t, err)

	cmd, err := commands.NewAssignDriverCommand(aggregate.ID(), assignee.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockDispatchUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("DriverRepository").Return(driverRepo)
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	driverRepo.On("Get", mock.Anything, assignee.ID()).Return(assignee, nil).Once()
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	deliveryRepo.On("GetByOrderID", mock.Anything, aggregate.ID()).Return(nil, nil).Once()
	deliveryRepo.On("Add", mock.Anything, mock.MatchedBy(func(d *delivery.Delivery) bool {
		return d.OrderID().IsEqual(aggregate.ID()) &&
			d.Status() == delivery.StatusAssigned &&
			d.Address() == aggregate.DeliveryAddress()
	})).Return(nil).Once()
	driverRepo.On("Update", mock.Anything, assignee).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDriverCommandHandler(factory, clock.NewFixed(assignedAt))
	require.NoError(t, h.Handle(ctx, cmd))

	deliveryRepo.AssertNotCalled(t, "Update")
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
