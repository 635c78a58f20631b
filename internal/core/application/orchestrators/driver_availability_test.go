package orchestrators_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"assistance/internal/core/application/orchestrators"
	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/core/ports"
)

type MockDriverProviderClient struct{ mock.Mock }

func (m *MockDriverProviderClient) GetDriver(ctx context.Context, driverID kernel.UUID) (ports.ProviderDriver, error) {
	args := m.Called(ctx, driverID)
	return args.Get(0).(ports.ProviderDriver), args.Error(1)
}

func (m *MockDriverProviderClient) GetAvailableDrivers(ctx context.Context) ([]ports.ProviderDriver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.ProviderDriver), args.Error(1)
}

func (m *MockDriverProviderClient) SetAvailability(ctx context.Context, driverID kernel.UUID, available bool) error {
	args := m.Called(ctx, driverID, available)
	return args.Error(0)
}

func TestDriverAvailability_ConfirmAvailable_Success(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	driver := ports.ProviderDriver{ID: driverID, Name: "Marta Ruiz", IsAvailable: true}

	client := new(MockDriverProviderClient)
	client.On("GetDriver", ctx, driverID).Return(driver, nil).Once()
	client.On("GetAvailableDrivers", ctx).Return([]ports.ProviderDriver{driver}, nil).Once()

	availability := orchestrators.NewDriverAvailability(client)
	err := availability.ConfirmAvailable(ctx, driverID)

	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestDriverAvailability_ConfirmAvailable_NotInRoster(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	driver := ports.ProviderDriver{ID: driverID, Name: "Marta Ruiz", IsAvailable: true}
	other := ports.ProviderDriver{ID: kernel.NewUUID(), Name: "Luis Vega", IsAvailable: true}

	client := new(MockDriverProviderClient)
	client.On("GetDriver", ctx, driverID).Return(driver, nil).Once()
	client.On("GetAvailableDrivers", ctx).Return([]ports.ProviderDriver{other}, nil).Once()

	availability := orchestrators.NewDriverAvailability(client)
	err := availability.ConfirmAvailable(ctx, driverID)

	require.Error(t, err)
	require.ErrorIs(t, err, orchestrators.ErrDriverNotAvailable)
}

func TestDriverAvailability_ConfirmAvailable_ViewsDisagree(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	// in the roster, but the per-driver view says busy
	driver := ports.ProviderDriver{ID: driverID, Name: "Marta Ruiz", IsAvailable: false}

	client := new(MockDriverProviderClient)
	client.On("GetDriver", ctx, driverID).Return(driver, nil).Once()
	client.On("GetAvailableDrivers", ctx).Return([]ports.ProviderDriver{driver}, nil).Once()

	availability := orchestrators.NewDriverAvailability(client)
	err := availability.ConfirmAvailable(ctx, driverID)

	require.Error(t, err)
	require.ErrorIs(t, err, orchestrators.ErrDriverNotAvailable)
}

func TestDriverAvailability_ConfirmAvailable_ProviderError(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()

	client := new(MockDriverProviderClient)
	client.On("GetDriver", ctx, driverID).
		Return(ports.ProviderDriver{}, errors.New("connection refused")).
		Once()

	availability := orchestrators.NewDriverAvailability(client)
	err := availability.ConfirmAvailable(ctx, driverID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch driver")
}

func TestDriverAvailability_ReserveAndRelease(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()

	client := new(MockDriverProviderClient)
	client.On("SetAvailability", ctx, driverID, false).Return(nil).Once()
	client.On("SetAvailability", ctx, driverID, true).Return(nil).Once()

	availability := orchestrators.NewDriverAvailability(client)

	require.NoError(t, availability.Reserve(ctx, driverID))
	require.NoError(t, availability.Release(ctx, driverID))
	client.AssertExpectations(t)
}

func TestDriverAvailability_Release_ProviderError(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()

	client := new(MockDriverProviderClient)
	client.On("SetAvailability", ctx, driverID, true).
		Return(errors.New("connection refused")).
		Once()

	availability := orchestrators.NewDriverAvailability(client)
	err := availability.Release(ctx, driverID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "release driver")
}
