package commands

import (
	"context"

	"assistance/internal/core/domain/events"
	"assistance/internal/core/domain/model/order"
)

// CancelOrderCommandHandler aborts an order once the scene has been reached.
// Cancellation is only legal from "located" or "in progress"; earlier stages
// are unwound through refusal or expiration instead. The driver is freed at
// the provider but stays referenced on the order for audit.
type CancelOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	availability DriverAvailabilityService
	publisher    events.Publisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellations.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	availability DriverAvailabilityService,
	publisher events.Publisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory:   uowFactory,
		availability: availability,
		publisher:    publisher,
	}
}

// Handle processes the cancellation.
// The remote availability flip runs after the local commit; on failure the
// order is marked for reconciliation and the fault is surfaced, but the
// cancellation itself stands.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = assistanceOrder.TransitionTo(order.Cancelled); err != nil {
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

	return h.publisher.Publish(ctx, order.NewOrderCancelledEvent(assistanceOrder))
}
