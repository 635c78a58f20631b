package commands

import (
	"context"
	"errors"

	"assistance/internal/core/domain/events"
	"assistance/internal/core/domain/model/order"
)

// ErrOrderHasNoAssignedDriver is returned when a lifecycle step that assumes
// an assigned driver finds the order without one. It indicates state
// corruption, not a caller mistake.
var ErrOrderHasNoAssignedDriver = errors.New("order has no assigned driver")

// CompleteWorkCommandHandler moves an in-progress order to "completed" and
// frees the driver at the provider. The driver reference stays on the order
// for billing and audit.
type CompleteWorkCommandHandler struct {
	uowFactory   OrderUoWFactory
	availability DriverAvailabilityService
	publisher    events.Publisher
}

// NewCompleteWorkCommandHandler creates a handler for work completion reports.
func NewCompleteWorkCommandHandler(
	uowFactory OrderUoWFactory,
	availability DriverAvailabilityService,
	publisher events.Publisher,
) CompleteWorkCommandHandler {
	return CompleteWorkCommandHandler{
		uowFactory:   uowFactory,
		availability: availability,
		publisher:    publisher,
	}
}

// Handle processes the completion report.
// The remote availability flip runs after the local commit; on failure the
// order is marked for reconciliation and the fault is surfaced, but the
// completion itself stands.
func (h *CompleteWorkCommandHandler) Handle(ctx context.Context, cmd CompleteWorkCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	if err = assistanceOrder.TransitionTo(order.Completed); err != nil {
		return err
	}

	driverID := assistanceOrder.Driver()
	if driverID == nil {
		return ErrOrderHasNoAssignedDriver
	}

	if err = orderRepo.Update(ctx, assistanceOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = releaseDriverRemotely(ctx, h.uowFactory, h.availability, cmd.OrderID(), *driverID); err != nil {
		return err
	}

	return h.publisher.Publish(ctx, order.NewWorkCompletedEvent(assistanceOrder, *driverID))
}
