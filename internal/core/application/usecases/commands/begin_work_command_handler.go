package commands

import (
	"context"

	"assistance/internal/core/domain/events"
	"assistance/internal/core/domain/model/order"
)

// BeginWorkCommandHandler moves a located order to "in progress" when the
// driver starts the assistance work.
type BeginWorkCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  events.Publisher
}

// NewBeginWorkCommandHandler creates a handler for work-start reports.
func NewBeginWorkCommandHandler(
	uowFactory OrderUoWFactory,
	publisher events.Publisher,
) BeginWorkCommandHandler {
	return BeginWorkCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the work-start report.
func (h *BeginWorkCommandHandler) Handle(ctx context.Context, cmd BeginWorkCommand) error {
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

	if err = assistanceOrder.TransitionTo(order.InProgress); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, assistanceOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.Publish(ctx, order.NewWorkStartedEvent(assistanceOrder))
}
