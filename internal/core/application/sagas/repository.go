package sagas

import (
	"context"

	"assistance/internal/core/domain/model/kernel"
)

// SagaRepository persists order status sagas keyed by their correlation id.
// It lives in this package rather than in ports because the saga is an
// application-layer concern: nothing in the domain core depends on it.
type SagaRepository interface {
	// Get retrieves the saga tracking the given order.
	// Returns errs.ErrObjectNotFound when no saga exists yet.
	Get(ctx context.Context, orderID kernel.UUID) (*OrderStatusSaga, error)

	// Save upserts the saga.
	Save(ctx context.Context, saga *OrderStatusSaga) error
}
