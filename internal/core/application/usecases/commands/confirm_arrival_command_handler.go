package commands

import (
	"context"

	"assistance/internal/core/domain/events"
	"assistance/internal/core/domain/model/order"
)

// ConfirmArrivalCommandHandler moves an accepted order to "located" when the
// driver reports arrival at the incident scene.
type ConfirmArrivalCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  events.Publisher
}

// NewConfirmArrivalCommandHandler creates a handler for arrival confirmations.
func NewConfirmArrivalCommandHandler(
	uowFactory OrderUoWFactory,
	publisher events.Publisher,
) ConfirmArrivalCommandHandler {
	return ConfirmArrivalCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the arrival confirmation.
func (h *ConfirmArrivalCommandHandler) Handle(ctx context.Context, cmd ConfirmArrivalCommand) error {
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

	if err = assistanceOrder.TransitionTo(order.Located); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, assistanceOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.Publish(ctx, order.NewDriverArrivedEvent(assistanceOrder))
}
