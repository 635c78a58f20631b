package commands

import (
	"context"

	"assistance/internal/core/domain/services"
)

// ApplyExtraCostsCommandHandler runs the extra-cost validation pipeline and
// replaces the order's extra-cost list. The whole batch is rejected if any
// item fails validation; there are no partial applications.
type ApplyExtraCostsCommandHandler struct {
	uowFactory OrderUoWFactory
	validator  services.ExtraCostValidator
}

// NewApplyExtraCostsCommandHandler creates a handler for extra-cost updates.
func NewApplyExtraCostsCommandHandler(
	uowFactory OrderUoWFactory,
	validator services.ExtraCostValidator,
) ApplyExtraCostsCommandHandler {
	return ApplyExtraCostsCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
	}
}

// Handle processes the extra-cost replacement.
// The stored total cost is not touched here; a recompute request reconciles
// it with the new extra-cost set.
func (h *ApplyExtraCostsCommandHandler) Handle(ctx context.Context, cmd ApplyExtraCostsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, err := h.validator.ValidateAndBuild(cmd.OrderID(), cmd.Items())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	assistanceOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = assistanceOrder.ApplyExtraCosts(items); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, assistanceOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
