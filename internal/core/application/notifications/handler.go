// Package notifications pushes best-effort messages to drivers as their
// assignments change. Delivery rides on the domain events the command side
// publishes, so a notification can never block a lifecycle transition.
package notifications

import (
	"context"
	"fmt"

	"assistance/internal/core/domain/events"
	"assistance/internal/core/domain/model/order"
	"assistance/internal/core/ports"
)

// DriverNotificationHandler sends a push notification to the driver involved
// in an assignment-related event.
type DriverNotificationHandler struct {
	notifier ports.Notifier
}

// NewDriverNotificationHandler creates the notification event handler.
func NewDriverNotificationHandler(notifier ports.Notifier) *DriverNotificationHandler {
	return &DriverNotificationHandler{notifier: notifier}
}

// Subscribe registers the handler for the driver-facing event types.
func (h *DriverNotificationHandler) Subscribe(subscriber events.Subscriber) error {
	for _, eventType := range []string{
		order.DriverAssignedEventType,
		order.AssignmentExpiredEventType,
		order.WorkCompletedEventType,
	} {
		if err := subscriber.Subscribe(eventType, h); err != nil {
			return err
		}
	}

	return nil
}

// Handle pushes the notification matching the event. Unknown event types are
// ignored so over-subscription cannot fail the bus.
func (h *DriverNotificationHandler) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case order.DriverAssignedEvent:
		h.notifier.Notify(ctx, e.DriverID,
			"New assignment",
			fmt.Sprintf("You have been assigned to order %s. Please accept or refuse.", e.AggregateID()))
	case order.AssignmentExpiredEvent:
		h.notifier.Notify(ctx, e.DriverID,
			"Assignment expired",
			fmt.Sprintf("Order %s was reassigned because no answer arrived in time.", e.AggregateID()))
	case order.WorkCompletedEvent:
		h.notifier.Notify(ctx, e.DriverID,
			"Work completed",
			fmt.Sprintf("Order %s is completed. You are available again.", e.AggregateID()))
	}

	return nil
}
