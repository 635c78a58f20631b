package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistance/internal/core/application/usecases/commands"
	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/core/domain/model/order"
)

func validCreateOrderArgs() (kernel.UUID, kernel.UUID, kernel.UUID, string, string, order.IncidentType, time.Time) {
	return kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Calle Mayor 12, Madrid", "Taller Central, Getafe",
		order.IncidentTypeFlatTire, time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
}

func TestNewCreateOrderCommand_Success(t *testing.T) {
	orderID, contractID, operatorID, incidentAddr, destAddr, incidentType, date := validCreateOrderArgs()

	cmd, err := commands.NewCreateOrderCommand(
		orderID, contractID, operatorID, incidentAddr, destAddr, incidentType, date,
	)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, contractID, cmd.ContractID())
	assert.Equal(t, operatorID, cmd.OperatorID())
	assert.Equal(t, incidentAddr, cmd.IncidentAddress())
	assert.Equal(t, destAddr, cmd.DestinationAddress())
	assert.Equal(t, incidentType, cmd.IncidentType())
	assert.Equal(t, date, cmd.IncidentDate())
}

func TestNewCreateOrderCommand_EmptyIncidentAddress(t *testing.T) {
	orderID, contractID, operatorID, _, destAddr, incidentType, date := validCreateOrderArgs()

	_, err := commands.NewCreateOrderCommand(
		orderID, contractID, operatorID, "", destAddr, incidentType, date,
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrIncidentAddressIsRequired)
}

func TestNewCreateOrderCommand_EmptyDestinationAddress(t *testing.T) {
	orderID, contractID, operatorID, incidentAddr, _, incidentType, date := validCreateOrderArgs()

	_, err := commands.NewCreateOrderCommand(
		orderID, contractID, operatorID, incidentAddr, "", incidentType, date,
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDestinationAddressIsRequired)
}

func TestNewCreateOrderCommand_ZeroIncidentDate(t *testing.T) {
	orderID, contractID, operatorID, incidentAddr, destAddr, incidentType, _ := validCreateOrderArgs()

	_, err := commands.NewCreateOrderCommand(
		orderID, contractID, operatorID, incidentAddr, destAddr, incidentType, time.Time{},
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrIncidentDateIsRequired)
}

func TestNewCreateOrderCommand_UnknownIncidentType(t *testing.T) {
	orderID, contractID, operatorID, incidentAddr, destAddr, _, date := validCreateOrderArgs()

	_, err := commands.NewCreateOrderCommand(
		orderID, contractID, operatorID, incidentAddr, destAddr, order.IncidentTypeUnknown, date,
	)

	require.Error(t, err)
}

func TestNewCreateOrderCommand_InvalidIDs(t *testing.T) {
	_, contractID, operatorID, incidentAddr, destAddr, incidentType, date := validCreateOrderArgs()

	_, err := commands.NewCreateOrderCommand(
		kernel.UUID{}, contractID, operatorID, incidentAddr, destAddr, incidentType, date,
	)

	require.Error(t, err)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
