package commands

import (
	"context"
	"errors"

	"assistance/internal/core/domain/events"
	"assistance/internal/core/domain/model/order"
)

// ErrRespondingDriverIsNotAssigned is returned when the answering driver is
// not the one currently dispatched to the order.
var ErrRespondingDriverIsNotAssigned = errors.New("responding driver is not the assigned driver")

// RespondToAssignmentCommandHandler handles the driver's answer to a pending
// assignment. Acceptance moves the order to "accepted"; refusal returns it to
// "awaiting assignment", clears the driver, and frees the driver remotely.
type RespondToAssignmentCommandHandler struct {
	uowFactory   OrderUoWFactory
	availability DriverAvailabilityService
	publisher    events.Publisher
}

// NewRespondToAssignmentCommandHandler creates a handler for driver responses.
func NewRespondToAssignmentCommandHandler(
	uowFactory OrderUoWFactory,
	availability DriverAvailabilityService,
	publisher events.Publisher,
) RespondToAssignmentCommandHandler {
	return RespondToAssignmentCommandHandler{
		uowFactory:   uowFactory,
		availability: availability,
		publisher:    publisher,
	}
}

// Handle processes the driver's answer.
// On refusal the remote availability flip happens after the local commit;
// if the flip fails the order is marked for reconciliation and the fault is
// surfaced, but the refusal itself stands.
func (h *RespondToAssignmentCommandHandler) Handle(ctx context.Context, cmd RespondToAssignmentCommand) error {
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

	assigned := assistanceOrder.Driver()
	if assigned == nil || !assigned.IsEqual(cmd.DriverID()) {
		return ErrRespondingDriverIsNotAssigned
	}

	if cmd.Accepted() {
		if err = assistanceOrder.TransitionTo(order.Accepted); err != nil {
			return err
		}
	} else {
		if err = assistanceOrder.TransitionTo(order.AwaitingAssignment); err != nil {
			return err
		}
		assistanceOrder.ReleaseDriver()
	}

	if err = orderRepo.Update(ctx, assistanceOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if cmd.Accepted() {
		return h.publisher.Publish(ctx, order.NewDriverAcceptedEvent(assistanceOrder, cmd.DriverID()))
	}

	if err = releaseDriverRemotely(ctx, h.uowFactory, h.availability, cmd.OrderID(), cmd.DriverID()); err != nil {
		return err
	}

	return h.publisher.Publish(ctx, order.NewDriverRefusedEvent(assistanceOrder, cmd.DriverID()))
}
