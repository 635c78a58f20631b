package commands

import (
	"context"

	"assistance/internal/core/domain/events"
	"assistance/internal/core/domain/model/order"
)

// AssignDriverCommandHandler handles driver dispatch.
// Moves the order to "awaiting driver response", records the driver, and
// flips the driver's remote availability flag after the local commit.
//
// The remote flip is deliberately the last step: if it fails, the local
// assignment stands and the fault is surfaced to the caller instead of being
// compensated, because a driver marked busy locally but free remotely is
// resolved by the provider on the next roster read.
type AssignDriverCommandHandler struct {
	uowFactory   OrderUoWFactory
	availability DriverAvailabilityService
	publisher    events.Publisher
}

// NewAssignDriverCommandHandler creates a handler for driver dispatch.
func NewAssignDriverCommandHandler(
	uowFactory OrderUoWFactory,
	availability DriverAvailabilityService,
	publisher events.Publisher,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory:   uowFactory,
		availability: availability,
		publisher:    publisher,
	}
}

// Handle processes the driver dispatch command.
// Verifies the order awaits assignment and the driver is genuinely available
// at the provider before committing the assignment.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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

	if err = assistanceOrder.TransitionTo(order.AwaitingDriverResponse); err != nil {
		return err
	}

	if err = assistanceOrder.AssignDriver(cmd.DriverID()); err != nil {
		return err
	}

	if err = h.availability.ConfirmAvailable(ctx, cmd.DriverID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, assistanceOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.availability.Reserve(ctx, cmd.DriverID()); err != nil {
		return err
	}

	return h.publisher.Publish(ctx, order.NewDriverAssignedEvent(assistanceOrder, cmd.DriverID()))
}
