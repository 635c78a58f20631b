package ports

import (
	"context"

	"assistance/internal/core/domain/model/kernel"
)

// ProviderDriver is the provider service's view of a driver, as returned by
// its REST API.
type ProviderDriver struct {
	ID          kernel.UUID
	Name        string
	IsAvailable bool
}

// DriverProviderClient is the outbound contract with the external
// driver-provider service. Every call failure is an infrastructure fault:
// the orchestration cannot safely continue past it, so implementations
// surface errors verbatim and callers abort.
type DriverProviderClient interface {
	// GetDriver fetches one driver by identifier.
	GetDriver(ctx context.Context, driverID kernel.UUID) (ProviderDriver, error)

	// GetAvailableDrivers fetches the roster of currently available drivers.
	GetAvailableDrivers(ctx context.Context) ([]ProviderDriver, error)

	// SetAvailability flips the driver's availability flag.
	SetAvailability(ctx context.Context, driverID kernel.UUID, available bool) error
}
