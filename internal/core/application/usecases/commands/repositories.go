// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and domain event publication after commit.
package commands

import (
	"context"

	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ContractRepoFactory provides access to the contract repository within a transaction.
	ContractRepoFactory interface {
		ContractRepository() ports.ContractRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only touch the order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions for operations that read contract terms while
	// modifying orders.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   contractRepo := uow.ContractRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		ContractRepoFactory
	}

	// UoWFactory creates new unit of work instances for order+contract operations.
	UoWFactory interface {
		Create() UoW
	}
)

// DriverAvailabilityService keeps the external driver-provider's availability
// flag in step with local driver occupancy. The remote flips happen outside
// the local transaction; callers invoke them only after a successful commit.
type DriverAvailabilityService interface {
	// ConfirmAvailable verifies the driver exists at the provider and is free.
	ConfirmAvailable(ctx context.Context, driverID kernel.UUID) error

	// Reserve flips the driver's remote availability flag to false.
	Reserve(ctx context.Context, driverID kernel.UUID) error

	// Release flips the driver's remote availability flag back to true.
	Release(ctx context.Context, driverID kernel.UUID) error
}
