// Package sagas tracks long-running order lifecycles through the domain
// events the command side publishes. The saga is an observer: it mirrors the
// order's status machine to spot discrepancies, but it records what actually
// happened and never rejects an event.
package sagas

import (
	"time"

	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/core/domain/model/order"
	"assistance/internal/pkg/errs"
	"assistance/internal/pkg/guard"
)

var ErrOrderStatusSagaIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderStatusSaga must be created via NewOrderStatusSaga or RestoreOrderStatusSaga",
)

// OrderStatusSaga is the event-sourced mirror of one order's lifecycle.
// Its correlation identifier is the order id; there is exactly one saga per
// order. State moves only in response to observed events.
type OrderStatusSaga struct {
	orderID          kernel.UUID
	state            order.Status
	discrepancies    int
	createdAt        time.Time
	lastTransitionAt time.Time

	guard guard.ConstructorGuard
}

// NewOrderStatusSaga starts tracking an order from its creation event.
func NewOrderStatusSaga(orderID kernel.UUID, startedAt time.Time) (*OrderStatusSaga, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	return &OrderStatusSaga{
		orderID:          orderID,
		state:            order.AwaitingAssignment,
		createdAt:        startedAt.UTC(),
		lastTransitionAt: startedAt.UTC(),
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrderStatusSaga reconstructs a saga from persistent storage.
func RestoreOrderStatusSaga(
	orderID kernel.UUID,
	state order.Status,
	discrepancies int,
	createdAt time.Time,
	lastTransitionAt time.Time,
) (*OrderStatusSaga, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := state.Validate(); err != nil {
		return nil, err
	}

	return &OrderStatusSaga{
		orderID:          orderID,
		state:            state,
		discrepancies:    discrepancies,
		createdAt:        createdAt,
		lastTransitionAt: lastTransitionAt,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the saga was properly constructed.
func (s *OrderStatusSaga) Validate() error {
	if s == nil {
		return ErrOrderStatusSagaIsNotConstructed
	}
	return s.guard.Validate(ErrOrderStatusSagaIsNotConstructed)
}

// OrderID returns the tracked order's identifier.
func (s *OrderStatusSaga) OrderID() kernel.UUID {
	return s.orderID
}

// State returns the saga's view of the order status.
func (s *OrderStatusSaga) State() order.Status {
	return s.state
}

// Discrepancies returns how many observed moves disagreed with the mirror
// status machine.
func (s *OrderStatusSaga) Discrepancies() int {
	return s.discrepancies
}

// CreatedAt returns when tracking started.
func (s *OrderStatusSaga) CreatedAt() time.Time {
	return s.createdAt
}

// LastTransitionAt returns when the saga last moved.
func (s *OrderStatusSaga) LastTransitionAt() time.Time {
	return s.lastTransitionAt
}

// Record applies an observed status to the saga and reports whether the move
// disagreed with the mirror machine.
//
// Terminal states are absorbing: an event arriving after Paid or Cancelled is
// counted as a discrepancy and the state stays put. Any other disagreement is
// also counted, but the observed status is still recorded, because the saga
// reflects what the system did rather than what it should have done.
func (s *OrderStatusSaga) Record(observed order.Status, at time.Time) bool {
	if s.state == observed {
		return false
	}

	if s.state.IsTerminal() {
		s.discrepancies++
		return true
	}

	clean := s.state.CanTransitionTo(observed)
	if !clean {
		s.discrepancies++
	}

	s.state = observed
	s.lastTransitionAt = at.UTC()
	return !clean
}
