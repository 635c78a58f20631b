package sagarepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"assistance/internal/core/application/sagas"
	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/pkg/errs"
)

var _ sagas.SagaRepository = (*GormSagaRepository)(nil)

// GormSagaRepository stores order status sagas in PostgreSQL using GORM.
type GormSagaRepository struct {
	db *gorm.DB
}

// NewGormSagaRepository creates a new GORM-based saga repository.
func NewGormSagaRepository(db *gorm.DB) *GormSagaRepository {
	return &GormSagaRepository{db: db}
}

// Get retrieves the saga tracking the given order.
func (r *GormSagaRepository) Get(ctx context.Context, orderID kernel.UUID) (*sagas.OrderStatusSaga, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto SagaDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("saga", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Save upserts the saga. Sagas are written by a single consumer per order, so
// a plain upsert is enough; there is no version check here.
func (r *GormSagaRepository) Save(ctx context.Context, saga *sagas.OrderStatusSaga) error {
	if err := saga.Validate(); err != nil {
		return err
	}

	dto := fromDomain(saga)

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}
