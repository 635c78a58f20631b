package commands_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"assistance/internal/core/application/usecases/commands"
	"assistance/internal/core/domain/model/contract"
	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/core/domain/services"
	"assistance/internal/pkg/errs"
)

func testContract(t *testing.T, id kernel.UUID) *contract.Contract {
	t.Helper()

	flat, err := kernel.NewMoneyFromFloat(50)
	require.NoError(t, err)
	perKm, err := kernel.NewMoneyFromFloat(5)
	require.NoError(t, err)
	policy, err := contract.NewPolicy(decimal.NewFromInt(25), flat, perKm)
	require.NoError(t, err)

	c, err := contract.NewContract(id, "1234-ABC", policy, true)
	require.NoError(t, err)

	return c
}

func TestRecomputeTotalCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder := newTestOrder(t)
	testOrderContract := testContract(t, testOrder.ContractID())

	cmd, err := commands.NewRecomputeTotalCommand(testOrder.ID(), decimal.NewFromInt(30))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	contractRepo := new(MockContractRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("ContractRepository").Return(contractRepo).Once(),
		contractRepo.On("Get", ctx, testOrder.ContractID()).Return(testOrderContract, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecomputeTotalCommandHandler(factory, services.NewCostCalculator())
	total, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	// 50 flat + 5 km over coverage at 5 each
	assert.Equal(t, "75", total.String())
	assert.True(t, testOrder.TotalCost().IsEqual(total))
}

func TestRecomputeTotalCommandHandler_Handle_WithinCoverage(t *testing.T) {
	ctx := t.Context()
	testOrder := newTestOrder(t)
	testOrderContract := testContract(t, testOrder.ContractID())

	cmd, err := commands.NewRecomputeTotalCommand(testOrder.ID(), decimal.NewFromInt(10))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	contractRepo := new(MockContractRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("ContractRepository").Return(contractRepo).Once(),
		contractRepo.On("Get", ctx, testOrder.ContractID()).Return(testOrderContract, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecomputeTotalCommandHandler(factory, services.NewCostCalculator())
	total, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "50", total.String())
}

func TestNewRecomputeTotalCommand_NegativeKm(t *testing.T) {
	_, err := commands.NewRecomputeTotalCommand(kernel.NewUUID(), decimal.NewFromInt(-1))

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
