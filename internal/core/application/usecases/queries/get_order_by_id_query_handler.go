package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/core/domain/model/order"
	"assistance/internal/pkg/errs"
)

// GetOrderByIDQueryHandler reads one order projection from the database.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single-order reads.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when no order
// exists under the requested identifier.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (GetOrderByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	var (
		response     GetOrderByIDQueryResponse
		id           uuid.UUID
		contractID   uuid.UUID
		operatorID   uuid.UUID
		driverID     *uuid.UUID
		incidentLat  float64
		incidentLon  float64
		destLat      float64
		destLon      float64
		incidentType int
		incidentDate time.Time
		status       int
		totalCost    float64
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			contract_id,
			operator_id,
			driver_id,
			incident_lat,
			incident_lon,
			destination_lat,
			destination_lon,
			incident_type,
			incident_date,
			status,
			total_cost
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id, &contractID, &operatorID, &driverID,
		&incidentLat, &incidentLon, &destLat, &destLon,
		&incidentType, &incidentDate, &status, &totalCost,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderByIDQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}
	if response.ContractID, err = kernel.UUIDFromBytes(contractID[:]); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}
	if response.OperatorID, err = kernel.UUIDFromBytes(operatorID[:]); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}
	if driverID != nil {
		dID, idErr := kernel.UUIDFromBytes((*driverID)[:])
		if idErr != nil {
			return GetOrderByIDQueryResponse{}, idErr
		}
		response.DriverID = &dID
	}

	if response.IncidentCoordinates, err = kernel.NewCoordinates(incidentLat, incidentLon); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}
	if response.DestinationCoordinates, err = kernel.NewCoordinates(destLat, destLon); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	response.IncidentType = order.IncidentType(incidentType).String()
	response.IncidentDate = incidentDate
	response.Status = order.Status(status).String()
	response.TotalCost = totalCost

	if response.ExtraCosts, err = h.readExtraCosts(ctx, query.OrderID()); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderByIDQueryHandler) readExtraCosts(
	ctx context.Context,
	orderID kernel.UUID,
) ([]ExtraCostResponse, error) {
	extraCosts := make([]ExtraCostResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price
		FROM extra_costs
		WHERE order_id = ?
		ORDER BY name
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id    uuid.UUID
			name  string
			price float64
		)

		if err = rows.Scan(&id, &name, &price); err != nil {
			return nil, err
		}

		costID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		extraCosts = append(extraCosts, ExtraCostResponse{ID: costID, Name: name, Price: price})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return extraCosts, nil
}
