package sagas_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"assistance/internal/core/application/sagas"
	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/core/domain/model/order"
	"assistance/internal/pkg/errs"
)

type MockSagaRepository struct{ mock.Mock }

func (m *MockSagaRepository) Get(ctx context.Context, orderID kernel.UUID) (*sagas.OrderStatusSaga, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sagas.OrderStatusSaga), args.Error(1)
}

func (m *MockSagaRepository) Save(ctx context.Context, saga *sagas.OrderStatusSaga) error {
	args := m.Called(ctx, saga)
	return args.Error(0)
}

func testHandlerOrder(t *testing.T) *order.Order {
	t.Helper()

	incident, err := kernel.NewCoordinates(40.4168, -3.7038)
	require.NoError(t, err)
	destination, err := kernel.NewCoordinates(40.3057, -3.7329)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		incident, destination, order.IncidentTypeOutOfFuel, time.Now(),
	)
	require.NoError(t, err)

	return o
}

func TestOrderStatusSagaHandler_Handle_CreatesSagaOnFirstEvent(t *testing.T) {
	ctx := t.Context()
	testOrder := testHandlerOrder(t)
	event := order.NewOrderCreatedEvent(testOrder)

	repository := new(MockSagaRepository)
	repository.On("Get", ctx, testOrder.ID()).
		Return(nil, errs.NewObjectNotFoundError("saga", testOrder.ID())).
		Once()
	repository.On("Save", ctx, mock.AnythingOfType("*sagas.OrderStatusSaga")).Return(nil).Once()

	handler := sagas.NewOrderStatusSagaHandler(repository, slog.Default())
	err := handler.Handle(ctx, event)

	require.NoError(t, err)
	saved := repository.Calls[1].Arguments[1].(*sagas.OrderStatusSaga)
	assert.Equal(t, order.AwaitingAssignment, saved.State())
	assert.Equal(t, 0, saved.Discrepancies())
}

func TestOrderStatusSagaHandler_Handle_AdvancesExistingSaga(t *testing.T) {
	ctx := t.Context()
	testOrder := testHandlerOrder(t)
	driverID := kernel.NewUUID()

	require.NoError(t, testOrder.TransitionTo(order.AwaitingDriverResponse))
	require.NoError(t, testOrder.AssignDriver(driverID))
	event := order.NewDriverAssignedEvent(testOrder, driverID)

	saga, err := sagas.NewOrderStatusSaga(testOrder.ID(), time.Now())
	require.NoError(t, err)

	repository := new(MockSagaRepository)
	repository.On("Get", ctx, testOrder.ID()).Return(saga, nil).Once()
	repository.On("Save", ctx, saga).Return(nil).Once()

	handler := sagas.NewOrderStatusSagaHandler(repository, slog.Default())
	err = handler.Handle(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, order.AwaitingDriverResponse, saga.State())
	assert.Equal(t, 0, saga.Discrepancies())
}

func TestOrderStatusSagaHandler_Handle_RecordsDiscrepancyWithoutFailing(t *testing.T) {
	ctx := t.Context()
	testOrder := testHandlerOrder(t)

	require.NoError(t, testOrder.TransitionTo(order.AwaitingDriverResponse))
	require.NoError(t, testOrder.AssignDriver(kernel.NewUUID()))
	require.NoError(t, testOrder.TransitionTo(order.Accepted))
	require.NoError(t, testOrder.TransitionTo(order.Located))
	require.NoError(t, testOrder.TransitionTo(order.InProgress))
	event := order.NewWorkStartedEvent(testOrder)

	// saga never saw the assignment events
	saga, err := sagas.NewOrderStatusSaga(testOrder.ID(), time.Now())
	require.NoError(t, err)

	repository := new(MockSagaRepository)
	repository.On("Get", ctx, testOrder.ID()).Return(saga, nil).Once()
	repository.On("Save", ctx, saga).Return(nil).Once()

	handler := sagas.NewOrderStatusSagaHandler(repository, slog.Default())
	err = handler.Handle(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, order.InProgress, saga.State())
	assert.Equal(t, 1, saga.Discrepancies())
}

func TestOrderStatusSagaHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	testOrder := testHandlerOrder(t)
	event := order.NewOrderCreatedEvent(testOrder)

	repository := new(MockSagaRepository)
	repository.On("Get", ctx, testOrder.ID()).
		Return(nil, assert.AnError).
		Once()

	handler := sagas.NewOrderStatusSagaHandler(repository, slog.Default())
	err := handler.Handle(ctx, event)

	require.Error(t, err)
	repository.AssertNotCalled(t, "Save", ctx, mock.Anything)
}
