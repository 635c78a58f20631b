// Package orchestrators coordinates the order lifecycle with external
// services that sit outside the local transaction boundary.
package orchestrators

import (
	"context"
	"errors"
	"fmt"

	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/core/ports"
)

var (
	// ErrDriverNotFound is returned when the provider service does not know the driver.
	ErrDriverNotFound = errors.New("driver not found at provider")
	// ErrDriverNotAvailable is returned when the driver exists but is not in
	// the availability roster, or the two provider views disagree.
	ErrDriverNotAvailable = errors.New("driver is not available for assignment")
)

// DriverAvailability keeps the external driver-provider's availability flag
// consistent with local driver occupancy.
//
// The local order persistence and the remote flag flip are two independent,
// non-transactional steps; every method here either fully succeeds or returns
// a descriptive fault for the caller to surface. There is no automatic
// rollback and no retry.
type DriverAvailability struct {
	client ports.DriverProviderClient
}

// NewDriverAvailability creates the orchestrator over a provider client.
func NewDriverAvailability(client ports.DriverProviderClient) DriverAvailability {
	return DriverAvailability{client: client}
}

// ConfirmAvailable verifies that the driver exists at the provider, appears in
// the availability roster, and that both views agree the driver is free.
// Call this before committing a local assignment.
func (d DriverAvailability) ConfirmAvailable(ctx context.Context, driverID kernel.UUID) error {
	driver, err := d.client.GetDriver(ctx, driverID)
	if err != nil {
		return fmt.Errorf("driver provider: fetch driver %s: %w", driverID, err)
	}
	if !driver.ID.IsEqual(driverID) {
		return fmt.Errorf("%w: %s", ErrDriverNotFound, driverID)
	}

	roster, err := d.client.GetAvailableDrivers(ctx)
	if err != nil {
		return fmt.Errorf("driver provider: fetch availability roster: %w", err)
	}

	inRoster := false
	for _, available := range roster {
		if available.ID.IsEqual(driverID) {
			inRoster = true
			break
		}
	}
	if !inRoster || !driver.IsAvailable {
		return fmt.Errorf("%w: %s", ErrDriverNotAvailable, driverID)
	}

	return nil
}

// Reserve flips the driver's remote availability flag to false after the
// local assignment has been committed.
func (d DriverAvailability) Reserve(ctx context.Context, driverID kernel.UUID) error {
	if err := d.client.SetAvailability(ctx, driverID, false); err != nil {
		return fmt.Errorf("driver provider: reserve driver %s: %w", driverID, err)
	}
	return nil
}

// Release flips the driver's remote availability flag back to true after a
// refusal, completion, cancellation or expiration.
func (d DriverAvailability) Release(ctx context.Context, driverID kernel.UUID) error {
	if err := d.client.SetAvailability(ctx, driverID, true); err != nil {
		return fmt.Errorf("driver provider: release driver %s: %w", driverID, err)
	}
	return nil
}
