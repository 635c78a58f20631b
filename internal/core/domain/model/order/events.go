package order

import (
	"assistance/internal/core/domain/events"
	"assistance/internal/core/domain/model/kernel"
)

// Event types published by the order lifecycle. The status saga subscribes to
// every one of them; the notification layer to a subset.
const (
	OrderCreatedEventType      = "orders.OrderCreated"
	DriverAssignedEventType    = "orders.DriverAssigned"
	DriverAcceptedEventType    = "orders.DriverAccepted"
	DriverRefusedEventType     = "orders.DriverRefused"
	DriverArrivedEventType     = "orders.DriverArrived"
	WorkStartedEventType       = "orders.WorkStarted"
	WorkCompletedEventType     = "orders.WorkCompleted"
	PaymentConfirmedEventType  = "orders.PaymentConfirmed"
	OrderCancelledEventType    = "orders.OrderCancelled"
	AssignmentExpiredEventType = "orders.AssignmentExpired"
)

// StatusEvent is implemented by every order lifecycle event; it exposes the
// status the order reached when the event was produced, so observers can
// mirror the transition without reloading the aggregate.
type StatusEvent interface {
	events.Event
	OrderStatus() Status
}

// statusEvent carries the shared payload of all lifecycle events.
type statusEvent struct {
	events.BaseEvent
	OrderID string `json:"order_id"`
	Status  string `json:"status"`

	status Status
}

func newStatusEvent(eventType string, orderID kernel.UUID, status Status) statusEvent {
	return statusEvent{
		BaseEvent: events.NewBaseEvent(eventType, orderID.String()),
		OrderID:   orderID.String(),
		Status:    status.String(),
		status:    status,
	}
}

// OrderStatus returns the status the order held when the event was published.
func (e statusEvent) OrderStatus() Status { return e.status }

// OrderCreatedEvent is published when a new order is registered.
type OrderCreatedEvent struct {
	statusEvent
	ContractID string `json:"contract_id"`
}

// NewOrderCreatedEvent builds the creation event from the fresh aggregate.
func NewOrderCreatedEvent(o *Order) OrderCreatedEvent {
	return OrderCreatedEvent{
		statusEvent: newStatusEvent(OrderCreatedEventType, o.ID(), o.Status()),
		ContractID:  o.ContractID().String(),
	}
}

// driverEvent extends the shared payload with the driver involved.
type driverEvent struct {
	statusEvent
	DriverID string `json:"driver_id"`
}

func newDriverEvent(eventType string, o *Order, driverID kernel.UUID) driverEvent {
	return driverEvent{
		statusEvent: newStatusEvent(eventType, o.ID(), o.Status()),
		DriverID:    driverID.String(),
	}
}

// DriverAssignedEvent is published when a driver is dispatched to an order.
type DriverAssignedEvent struct{ driverEvent }

// NewDriverAssignedEvent builds the dispatch event.
func NewDriverAssignedEvent(o *Order, driverID kernel.UUID) DriverAssignedEvent {
	return DriverAssignedEvent{newDriverEvent(DriverAssignedEventType, o, driverID)}
}

// DriverAcceptedEvent is published when the dispatched driver accepts.
type DriverAcceptedEvent struct{ driverEvent }

// NewDriverAcceptedEvent builds the acceptance event.
func NewDriverAcceptedEvent(o *Order, driverID kernel.UUID) DriverAcceptedEvent {
	return DriverAcceptedEvent{newDriverEvent(DriverAcceptedEventType, o, driverID)}
}

// DriverRefusedEvent is published when the dispatched driver refuses and the
// order returns to AwaitingAssignment.
type DriverRefusedEvent struct{ driverEvent }

// NewDriverRefusedEvent builds the refusal event.
func NewDriverRefusedEvent(o *Order, driverID kernel.UUID) DriverRefusedEvent {
	return DriverRefusedEvent{newDriverEvent(DriverRefusedEventType, o, driverID)}
}

// DriverArrivedEvent is published when the driver confirms arrival on site.
type DriverArrivedEvent struct{ statusEvent }

// NewDriverArrivedEvent builds the arrival event.
func NewDriverArrivedEvent(o *Order) DriverArrivedEvent {
	return DriverArrivedEvent{newStatusEvent(DriverArrivedEventType, o.ID(), o.Status())}
}

// WorkStartedEvent is published when remediation work begins.
type WorkStartedEvent struct{ statusEvent }

// NewWorkStartedEvent builds the work-started event.
func NewWorkStartedEvent(o *Order) WorkStartedEvent {
	return WorkStartedEvent{newStatusEvent(WorkStartedEventType, o.ID(), o.Status())}
}

// WorkCompletedEvent is published when the work is finished and the driver released.
type WorkCompletedEvent struct{ driverEvent }

// NewWorkCompletedEvent builds the completion event.
func NewWorkCompletedEvent(o *Order, driverID kernel.UUID) WorkCompletedEvent {
	return WorkCompletedEvent{newDriverEvent(WorkCompletedEventType, o, driverID)}
}

// PaymentConfirmedEvent is published when payment for a completed order is confirmed.
type PaymentConfirmedEvent struct{ statusEvent }

// NewPaymentConfirmedEvent builds the payment event.
func NewPaymentConfirmedEvent(o *Order) PaymentConfirmedEvent {
	return PaymentConfirmedEvent{newStatusEvent(PaymentConfirmedEventType, o.ID(), o.Status())}
}

// OrderCancelledEvent is published when an order is cancelled after the driver
// was on site.
type OrderCancelledEvent struct{ statusEvent }

// NewOrderCancelledEvent builds the cancellation event.
func NewOrderCancelledEvent(o *Order) OrderCancelledEvent {
	return OrderCancelledEvent{newStatusEvent(OrderCancelledEventType, o.ID(), o.Status())}
}

// AssignmentExpiredEvent is published by the expiration sweep for every order
// reclaimed from AwaitingDriverResponse.
type AssignmentExpiredEvent struct{ driverEvent }

// NewAssignmentExpiredEvent builds the expiration event.
func NewAssignmentExpiredEvent(o *Order, driverID kernel.UUID) AssignmentExpiredEvent {
	return AssignmentExpiredEvent{newDriverEvent(AssignmentExpiredEventType, o, driverID)}
}
