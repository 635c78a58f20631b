// Package contractrepo persists insurance contracts and their coverage
// policies. The lifecycle core only reads contracts; rows are maintained by
// the back office outside this service.
package contractrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"assistance/internal/core/domain/model/contract"
	"assistance/internal/core/domain/model/kernel"
)

// ContractDTO represents the database structure for contracts, the coverage
// policy embedded.
type ContractDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	VehiclePlate    string          `gorm:"index"`
	CoveredKm       decimal.Decimal `gorm:"type:numeric"`
	FlatCoverage    decimal.Decimal `gorm:"type:numeric"`
	PricePerExtraKm decimal.Decimal `gorm:"type:numeric"`
	Active          bool            `gorm:"index"`
}

// TableName overrides GORM's default naming convention to use "contracts".
func (ContractDTO) TableName() string {
	return "contracts"
}

// fromDomain converts a contract to its database representation.
func fromDomain(aggregate *contract.Contract) ContractDTO {
	policy := aggregate.Policy()

	return ContractDTO{
		ID:              aggregate.ID().Bytes(),
		VehiclePlate:    aggregate.VehiclePlate(),
		CoveredKm:       policy.CoveredKm(),
		FlatCoverage:    policy.FlatCoverage().Amount(),
		PricePerExtraKm: policy.PricePerExtraKm().Amount(),
		Active:          aggregate.IsActive(),
	}
}

// toDomain converts a database DTO back to a contract aggregate.
func toDomain(dto ContractDTO) (*contract.Contract, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	flatCoverage, err := kernel.NewMoney(dto.FlatCoverage)
	if err != nil {
		return nil, err
	}

	pricePerExtraKm, err := kernel.NewMoney(dto.PricePerExtraKm)
	if err != nil {
		return nil, err
	}

	policy, err := contract.NewPolicy(dto.CoveredKm, flatCoverage, pricePerExtraKm)
	if err != nil {
		return nil, err
	}

	return contract.NewContract(id, dto.VehiclePlate, policy, dto.Active)
}
