package ports

import (
	"context"

	"assistance/internal/core/domain/model/contract"
	"assistance/internal/core/domain/model/kernel"
)

// ContractRepository gives the lifecycle core read access to the contract
// bounded context. The core never mutates contracts.
type ContractRepository interface {
	// Get retrieves a contract with its policy terms by identifier.
	Get(ctx context.Context, id kernel.UUID) (*contract.Contract, error)

	// IsActive reports whether the contract exists and is currently active.
	IsActive(ctx context.Context, id kernel.UUID) (bool, error)
}
