package notifications_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"assistance/internal/core/application/notifications"
	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/core/domain/model/order"
)

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, recipientID string, title, body string) {
	m.Called(ctx, recipientID, title, body)
}

func notificationTestOrder(t *testing.T, driverID kernel.UUID) *order.Order {
	t.Helper()

	incident, err := kernel.NewCoordinates(40.4168, -3.7038)
	require.NoError(t, err)
	destination, err := kernel.NewCoordinates(40.3057, -3.7329)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		incident, destination, order.IncidentTypeAccident, time.Now(),
	)
	require.NoError(t, err)
	require.NoError(t, o.TransitionTo(order.AwaitingDriverResponse))
	require.NoError(t, o.AssignDriver(driverID))

	return o
}

func TestDriverNotificationHandler_Handle_DriverAssigned(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	testOrder := notificationTestOrder(t, driverID)
	event := order.NewDriverAssignedEvent(testOrder, driverID)

	notifier := new(MockNotifier)
	notifier.On("Notify", ctx, driverID.String(), "New assignment", mock.AnythingOfType("string")).Once()

	handler := notifications.NewDriverNotificationHandler(notifier)
	err := handler.Handle(ctx, event)

	require.NoError(t, err)
	notifier.AssertExpectations(t)

	body := notifier.Calls[0].Arguments[3].(string)
	assert.Contains(t, body, testOrder.ID().String())
}

func TestDriverNotificationHandler_Handle_IgnoresUnrelatedEvent(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	testOrder := notificationTestOrder(t, driverID)
	event := order.NewDriverArrivedEvent(testOrder)

	notifier := new(MockNotifier)

	handler := notifications.NewDriverNotificationHandler(notifier)
	err := handler.Handle(ctx, event)

	require.NoError(t, err)
	notifier.AssertNotCalled(t, "Notify", ctx, mock.Anything, mock.Anything, mock.Anything)
}
