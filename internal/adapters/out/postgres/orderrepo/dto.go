// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed for the hot lookups: status sweeps, driver assignment checks and
// pending-release reconciliation.
type OrderDTO struct {
	ID                     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ContractID             uuid.UUID       `gorm:"type:uuid;index"`
	OperatorID             uuid.UUID       `gorm:"type:uuid"`
	DriverID               *uuid.UUID      `gorm:"type:uuid;index"`
	Incident               CoordinatesDTO  `gorm:"embedded;embeddedPrefix:incident_"`
	Destination            CoordinatesDTO  `gorm:"embedded;embeddedPrefix:destination_"`
	IncidentType           int
	IncidentDate           time.Time
	TotalCost              decimal.Decimal `gorm:"type:numeric"`
	Status                 int             `gorm:"index"`
	Version                int
	PendingReleaseDriverID *uuid.UUID      `gorm:"type:uuid;index"`
	UpdatedAt              time.Time
	ExtraCosts             []ExtraCostDTO  `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CoordinatesDTO represents an embedded coordinate pair within the order table.
type CoordinatesDTO struct {
	Lat float64
	Lon float64
}

// ExtraCostDTO represents one applied extra cost row.
type ExtraCostDTO struct {
	ID      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID       `gorm:"type:uuid;index"`
	Name    string
	Price   decimal.Decimal `gorm:"type:numeric"`
}

// TableName overrides GORM's default naming convention to use "extra_costs".
func (ExtraCostDTO) TableName() string {
	return "extra_costs"
}

// fromDomain converts an order aggregate to its database representation.
// The version is NOT bumped here; Update handles the optimistic increment.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	var pendingReleaseDriverID *uuid.UUID
	if id := aggregate.PendingReleaseDriver(); id != nil {
		raw := id.Bytes()
		pendingReleaseDriverID = &raw
	}

	extraCosts := make([]ExtraCostDTO, 0, len(aggregate.ExtraCosts()))
	for _, item := range aggregate.ExtraCosts() {
		extraCosts = append(extraCosts, ExtraCostDTO{
			ID:      item.ID().Bytes(),
			OrderID: aggregate.ID().Bytes(),
			Name:    item.Name(),
			Price:   item.Price().Amount(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		ContractID: aggregate.ContractID().Bytes(),
		OperatorID: aggregate.OperatorID().Bytes(),
		DriverID:   driverID,
		Incident: CoordinatesDTO{
			Lat: aggregate.IncidentCoordinates().Latitude(),
			Lon: aggregate.IncidentCoordinates().Longitude(),
		},
		Destination: CoordinatesDTO{
			Lat: aggregate.DestinationCoordinates().Latitude(),
			Lon: aggregate.DestinationCoordinates().Longitude(),
		},
		IncidentType:           int(aggregate.IncidentType()),
		IncidentDate:           aggregate.IncidentDate(),
		TotalCost:              aggregate.TotalCost().Amount(),
		Status:                 int(aggregate.Status()),
		Version:                aggregate.Version(),
		PendingReleaseDriverID: pendingReleaseDriverID,
		ExtraCosts:             extraCosts,
	}
}

// toDomain converts a database DTO back to an order aggregate using
// RestoreOrder, so the rebuilt order behaves identically to a live one.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	contractID, err := kernel.UUIDFromBytes(dto.ContractID[:])
	if err != nil {
		return nil, err
	}

	operatorID, err := kernel.UUIDFromBytes(dto.OperatorID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	var pendingReleaseDriverID *kernel.UUID
	if dto.PendingReleaseDriverID != nil {
		pID, pendingErr := kernel.UUIDFromBytes((*dto.PendingReleaseDriverID)[:])
		if pendingErr != nil {
			return nil, pendingErr
		}
		pendingReleaseDriverID = &pID
	}

	incident, err := kernel.NewCoordinates(dto.Incident.Lat, dto.Incident.Lon)
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewCoordinates(dto.Destination.Lat, dto.Destination.Lon)
	if err != nil {
		return nil, err
	}

	totalCost, err := kernel.NewMoney(dto.TotalCost)
	if err != nil {
		return nil, err
	}

	extraCosts := make([]*order.ExtraCost, 0, len(dto.ExtraCosts))
	for _, item := range dto.ExtraCosts {
		costID, costErr := kernel.UUIDFromBytes(item.ID[:])
		if costErr != nil {
			return nil, costErr
		}

		price, costErr := kernel.NewMoney(item.Price)
		if costErr != nil {
			return nil, costErr
		}

		extraCost, costErr := order.NewExtraCost(costID, id, item.Name, price)
		if costErr != nil {
			return nil, costErr
		}

		extraCosts = append(extraCosts, extraCost)
	}

	return order.RestoreOrder(
		id,
		contractID,
		operatorID,
		driverID,
		incident,
		destination,
		order.IncidentType(dto.IncidentType),
		dto.IncidentDate,
		extraCosts,
		totalCost,
		order.Status(dto.Status),
		dto.Version,
		pendingReleaseDriverID,
	)
}
