package ports

import (
	"context"
	"time"

	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The write is conditional on the aggregate's loaded version; a
	// concurrent writer having bumped it surfaces as a stale-order failure
	// (errs.ErrVersionIsInvalid) rather than a silent last-write-wins.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllAwaitingDriverResponseBefore retrieves every order still in
	// AwaitingDriverResponse whose last change predates the cutoff.
	// Used by the expiration sweep.
	GetAllAwaitingDriverResponseBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// GetAllWithPendingDriverRelease retrieves orders whose remote
	// availability flip is still outstanding, for reconciliation retries.
	GetAllWithPendingDriverRelease(ctx context.Context) ([]*order.Order, error)
}
