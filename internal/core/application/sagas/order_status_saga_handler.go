package sagas

import (
	"context"
	"errors"
	"log/slog"

	"assistance/internal/core/domain/events"
	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/core/domain/model/order"
	"assistance/internal/pkg/errs"
)

// OrderStatusSagaHandler advances sagas from published lifecycle events.
// One handler instance serves every order; the saga to touch is resolved from
// the event's correlation id.
type OrderStatusSagaHandler struct {
	repository SagaRepository
	logger     *slog.Logger
}

// NewOrderStatusSagaHandler creates the saga event handler.
func NewOrderStatusSagaHandler(repository SagaRepository, logger *slog.Logger) *OrderStatusSagaHandler {
	return &OrderStatusSagaHandler{
		repository: repository,
		logger:     logger.With("component", "order-status-saga"),
	}
}

// Subscribe registers the handler for every order lifecycle event type.
func (h *OrderStatusSagaHandler) Subscribe(subscriber events.Subscriber) error {
	for _, eventType := range []string{
		order.OrderCreatedEventType,
		order.DriverAssignedEventType,
		order.DriverAcceptedEventType,
		order.DriverRefusedEventType,
		order.DriverArrivedEventType,
		order.WorkStartedEventType,
		order.WorkCompletedEventType,
		order.PaymentConfirmedEventType,
		order.OrderCancelledEventType,
		order.AssignmentExpiredEventType,
	} {
		if err := subscriber.Subscribe(eventType, h); err != nil {
			return err
		}
	}

	return nil
}

// Handle records the observed transition on the order's saga, creating the
// saga on the first event seen for that order. Discrepancies with the mirror
// status machine are logged, never propagated: the saga observes the
// lifecycle, it does not gate it.
func (h *OrderStatusSagaHandler) Handle(ctx context.Context, event events.Event) error {
	statusEvent, ok := event.(order.StatusEvent)
	if !ok {
		h.logger.WarnContext(ctx, "ignoring event without order status",
			"event_type", event.EventType(), "event_id", event.EventID())
		return nil
	}

	orderID, err := kernel.UUIDFromString(event.AggregateID())
	if err != nil {
		return err
	}

	saga, err := h.repository.Get(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		saga, err = NewOrderStatusSaga(orderID, event.OccurredAt())
	}
	if err != nil {
		return err
	}

	if discrepancy := saga.Record(statusEvent.OrderStatus(), event.OccurredAt()); discrepancy {
		h.logger.WarnContext(ctx, "order status discrepancy",
			"order_id", orderID.String(),
			"event_type", event.EventType(),
			"observed_status", statusEvent.OrderStatus().String(),
			"saga_state", saga.State().String(),
			"discrepancies", saga.Discrepancies(),
		)
	}

	return h.repository.Save(ctx, saga)
}
