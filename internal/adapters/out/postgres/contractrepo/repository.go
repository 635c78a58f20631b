package contractrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"assistance/internal/core/domain/model/contract"
	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/core/ports"
	"assistance/internal/pkg/errs"
)

var _ ports.ContractRepository = (*GormContractRepository)(nil)

// GormContractRepository reads contracts from PostgreSQL using GORM.
type GormContractRepository struct {
	db *gorm.DB
}

// NewGormContractRepository creates a new GORM-based contract repository.
func NewGormContractRepository(db *gorm.DB) *GormContractRepository {
	return &GormContractRepository{db: db}
}

// Get retrieves a contract with its policy terms by identifier.
func (r *GormContractRepository) Get(ctx context.Context, id kernel.UUID) (*contract.Contract, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ContractDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("contract", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// IsActive reports whether the contract exists and is currently active.
func (r *GormContractRepository) IsActive(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var dto ContractDTO
	if err := r.db.WithContext(ctx).Select("id", "active").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, errs.NewObjectNotFoundError("contract", id.String())
		}
		return false, err
	}

	return dto.Active, nil
}
