package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"assistance/internal/core/application/usecases/commands"
	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/core/domain/model/order"
)

func TestCompleteWorkCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	testOrder := orderInStatus(t, order.InProgress, driverID)

	cmd, err := commands.NewCompleteWorkCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	availability := new(MockDriverAvailability)
	publisher := new(MockPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
		availability.On("Release", ctx, driverID).Return(nil).Once(),
	)
	publisher.On("Publish", ctx, mock.Anything).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteWorkCommandHandler(factory, availability, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, testOrder.Status())
	// the driver reference survives completion for billing
	require.NotNil(t, testOrder.Driver())
	availability.AssertExpectations(t)
}

func TestCompleteWorkCommandHandler_Handle_RemoteReleaseFailsMarksPending(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	testOrder := orderInStatus(t, order.InProgress, driverID)

	cmd, err := commands.NewCompleteWorkCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	markRepo := new(MockOrderRepository)
	markUow := new(MockUoW)
	availability := new(MockDriverAvailability)

	remoteErr := errors.New("provider unreachable")

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
		availability.On("Release", ctx, driverID).Return(remoteErr).Once(),
		markUow.On("Begin", ctx).Return(nil).Once(),
		markUow.On("OrderRepository").Return(markRepo).Once(),
		markRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		markRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		markUow.On("Commit", ctx).Return(nil).Once(),
		markUow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	factory.On("Create").Return(markUow).Once()

	handler := commands.NewCompleteWorkCommandHandler(factory, availability, new(MockPublisher))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, remoteErr)
	assert.Equal(t, order.Completed, testOrder.Status())
	require.NotNil(t, testOrder.PendingReleaseDriver())
	assert.True(t, testOrder.PendingReleaseDriver().IsEqual(driverID))
}

func TestCompleteWorkCommandHandler_Handle_WrongStatus(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	testOrder := orderInStatus(t, order.Accepted, driverID)

	cmd, err := commands.NewCompleteWorkCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteWorkCommandHandler(factory, new(MockDriverAvailability), new(MockPublisher))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrIllegalStatusTransition)
}
