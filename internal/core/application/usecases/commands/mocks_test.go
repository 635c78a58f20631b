package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"assistance/internal/core/application/usecases/commands"
	"assistance/internal/core/domain/events"
	"assistance/internal/core/domain/model/contract"
	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/core/domain/model/order"
	"assistance/internal/core/ports"
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllAwaitingDriverResponseBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllWithPendingDriverRelease(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockContractRepository struct{ mock.Mock }

func (m *MockContractRepository) Get(ctx context.Context, id kernel.UUID) (*contract.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contract.Contract), args.Error(1)
}

func (m *MockContractRepository) IsActive(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ContractRepository() ports.ContractRepository {
	args := m.Called()
	return args.Get(0).(ports.ContractRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDriverAvailability struct{ mock.Mock }

func (m *MockDriverAvailability) ConfirmAvailable(ctx context.Context, driverID kernel.UUID) error {
	args := m.Called(ctx, driverID)
	return args.Error(0)
}

func (m *MockDriverAvailability) Reserve(ctx context.Context, driverID kernel.UUID) error {
	args := m.Called(ctx, driverID)
	return args.Error(0)
}

func (m *MockDriverAvailability) Release(ctx context.Context, driverID kernel.UUID) error {
	args := m.Called(ctx, driverID)
	return args.Error(0)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, event events.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockGeocoder struct{ mock.Mock }

func (m *MockGeocoder) Geocode(ctx context.Context, address string) (kernel.Coordinates, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(kernel.Coordinates), args.Error(1)
}

// newTestOrder builds a freshly created order in "awaiting assignment".
func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	incident, err := kernel.NewCoordinates(40.4168, -3.7038)
	require.NoError(t, err)
	destination, err := kernel.NewCoordinates(40.3057, -3.7329)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		incident,
		destination,
		order.IncidentTypeBrakeFailure,
		time.Now(),
	)
	require.NoError(t, err)

	return o
}

// orderInStatus walks a fresh order through legal transitions until it
// reaches the target status, assigning the given driver on the way.
func orderInStatus(t *testing.T, target order.Status, driverID kernel.UUID) *order.Order {
	t.Helper()

	o := newTestOrder(t)
	if target == order.AwaitingAssignment {
		return o
	}

	require.NoError(t, o.TransitionTo(order.AwaitingDriverResponse))
	require.NoError(t, o.AssignDriver(driverID))

	path := map[order.Status][]order.Status{
		order.AwaitingDriverResponse: {},
		order.Accepted:               {order.Accepted},
		order.Located:                {order.Accepted, order.Located},
		order.InProgress:             {order.Accepted, order.Located, order.InProgress},
		order.Completed:              {order.Accepted, order.Located, order.InProgress, order.Completed},
		order.Paid:                   {order.Accepted, order.Located, order.InProgress, order.Completed, order.Paid},
		order.Cancelled:              {order.Accepted, order.Located, order.Cancelled},
	}

	steps, ok := path[target]
	require.True(t, ok, "no transition path to %s", target)

	for _, step := range steps {
		require.NoError(t, o.TransitionTo(step))
	}

	return o
}
