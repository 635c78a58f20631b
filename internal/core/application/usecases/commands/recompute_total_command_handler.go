package commands

import (
	"context"

	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/core/domain/services"
)

// RecomputeTotalCommandHandler recomputes an order's total cost from the
// contract's coverage terms and stores the result on the order.
type RecomputeTotalCommandHandler struct {
	uowFactory UoWFactory
	calculator services.CostCalculator
}

// NewRecomputeTotalCommandHandler creates a handler for total recomputation.
func NewRecomputeTotalCommandHandler(
	uowFactory UoWFactory,
	calculator services.CostCalculator,
) RecomputeTotalCommandHandler {
	return RecomputeTotalCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
	}
}

// Handle processes the recomputation and returns the new total.
// The coverage policy is read from the order's contract inside the same
// transaction that persists the result.
func (h *RecomputeTotalCommandHandler) Handle(
	ctx context.Context,
	cmd RecomputeTotalCommand,
) (kernel.Money, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.Money{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.Money{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	assistanceOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return kernel.Money{}, err
	}

	assistanceContract, err := uow.ContractRepository().Get(ctx, assistanceOrder.ContractID())
	if err != nil {
		return kernel.Money{}, err
	}

	total, err := h.calculator.ComputeTotal(
		cmd.KmTraveled(),
		assistanceContract.Policy(),
		assistanceOrder.ExtraCostPrices(),
	)
	if err != nil {
		return kernel.Money{}, err
	}

	assistanceOrder.SetTotalCost(total)

	if err = orderRepo.Update(ctx, assistanceOrder); err != nil {
		return kernel.Money{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.Money{}, err
	}

	return total, nil
}
