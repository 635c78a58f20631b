// Package sagarepo persists the order status sagas. One row per order,
// keyed by the order identifier the saga correlates on.
package sagarepo

import (
	"time"

	"github.com/google/uuid"

	"assistance/internal/core/application/sagas"
	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/core/domain/model/order"
)

// SagaDTO represents the database structure for order status sagas.
type SagaDTO struct {
	OrderID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	State            int
	Discrepancies    int
	CreatedAt        time.Time
	LastTransitionAt time.Time
}

// TableName overrides GORM's default naming convention to use "order_status_sagas".
func (SagaDTO) TableName() string {
	return "order_status_sagas"
}

// fromDomain converts a saga to its database representation.
func fromDomain(saga *sagas.OrderStatusSaga) SagaDTO {
	return SagaDTO{
		OrderID:          saga.OrderID().Bytes(),
		State:            int(saga.State()),
		Discrepancies:    saga.Discrepancies(),
		CreatedAt:        saga.CreatedAt(),
		LastTransitionAt: saga.LastTransitionAt(),
	}
}

// toDomain converts a database DTO back to a saga.
func toDomain(dto SagaDTO) (*sagas.OrderStatusSaga, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return sagas.RestoreOrderStatusSaga(
		orderID,
		order.Status(dto.State),
		dto.Discrepancies,
		dto.CreatedAt,
		dto.LastTransitionAt,
	)
}
