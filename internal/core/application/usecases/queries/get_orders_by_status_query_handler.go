package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/core/domain/model/order"
)

// GetOrdersByStatusQueryHandler reads the dispatch board rows for one status.
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for status-filtered reads.
// Requires a GORM database connection for query execution.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by order ID for consistent
// output; an empty slice means no order sits in the requested status.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]GetOrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersByStatusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			driver_id,
			incident_type,
			incident_date,
			status,
			total_cost
		FROM orders
		WHERE status = ?
		ORDER BY id
	`, int(query.Status())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			response     GetOrdersByStatusQueryResponse
			id           uuid.UUID
			driverID     *uuid.UUID
			incidentType int
			incidentDate time.Time
			status       int
			totalCost    float64
		)

		if err = rows.Scan(&id, &driverID, &incidentType, &incidentDate, &status, &totalCost); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = orderID

		if driverID != nil {
			dID, dErr := kernel.UUIDFromBytes((*driverID)[:])
			if dErr != nil {
				return nil, dErr
			}
			response.DriverID = &dID
		}

		response.IncidentType = order.IncidentType(incidentType).String()
		response.IncidentDate = incidentDate
		response.Status = order.Status(status).String()
		response.TotalCost = totalCost

		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
