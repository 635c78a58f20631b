package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"assistance/internal/core/application/usecases/commands"
	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/core/domain/services"
	"assistance/internal/pkg/errs"
)

func proposedExtraCost(t *testing.T, name string, price float64) services.ProposedExtraCost {
	t.Helper()

	money, err := kernel.NewMoneyFromFloat(price)
	require.NoError(t, err)

	return services.ProposedExtraCost{Name: name, Price: money}
}

func TestApplyExtraCostsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder := newTestOrder(t)

	cmd, err := commands.NewApplyExtraCostsCommand(testOrder.ID(), []services.ProposedExtraCost{
		proposedExtraCost(t, "Peaje", 12.50),
		proposedExtraCost(t, "Cerrajeria", 40),
	})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApplyExtraCostsCommandHandler(factory, services.NewExtraCostValidator())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, testOrder.ExtraCosts(), 2)
	assert.Equal(t, "Peaje", testOrder.ExtraCosts()[0].Name())
}

func TestApplyExtraCostsCommandHandler_Handle_ReplacesWholesale(t *testing.T) {
	ctx := t.Context()
	testOrder := newTestOrder(t)

	first, err := commands.NewApplyExtraCostsCommand(testOrder.ID(), []services.ProposedExtraCost{
		proposedExtraCost(t, "Peaje", 12.50),
		proposedExtraCost(t, "Pernocta", 80),
	})
	require.NoError(t, err)
	second, err := commands.NewApplyExtraCostsCommand(testOrder.ID(), []services.ProposedExtraCost{
		proposedExtraCost(t, "Grua Adicional", 150),
	})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("OrderRepository").Return(orderRepo).Twice()
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Twice()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Twice()
	uow.On("Commit", ctx).Return(nil).Twice()
	uow.On("Rollback", ctx).Return(nil).Twice()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Twice()

	handler := commands.NewApplyExtraCostsCommandHandler(factory, services.NewExtraCostValidator())
	require.NoError(t, handler.Handle(ctx, first))
	require.NoError(t, handler.Handle(ctx, second))

	require.Len(t, testOrder.ExtraCosts(), 1)
	assert.Equal(t, "Grua Adicional", testOrder.ExtraCosts()[0].Name())
}

func TestApplyExtraCostsCommandHandler_Handle_UnknownNameRejectsBatch(t *testing.T) {
	ctx := t.Context()
	testOrder := newTestOrder(t)

	cmd, err := commands.NewApplyExtraCostsCommand(testOrder.ID(), []services.ProposedExtraCost{
		proposedExtraCost(t, "Peaje", 12.50),
		proposedExtraCost(t, "Lavado de Coche", 25),
	})
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	handler := commands.NewApplyExtraCostsCommandHandler(factory, services.NewExtraCostValidator())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}
