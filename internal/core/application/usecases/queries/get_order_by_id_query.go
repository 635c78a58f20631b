// Package queries contains read-only operations over the persistence layer.
// Query handlers bypass the domain aggregates and read projections straight
// from the database, the read side of the CQRS split.
package queries

import (
	"errors"
	"time"

	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/pkg/guard"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves one order with its full projection, extra
// costs included.
//
// Example:
//
//	query, err := NewGetOrderByIDQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderByIDQueryHandler(db)
//	response, err := handler.Handle(ctx, query)
type GetOrderByIDQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for a single order.
func NewGetOrderByIDQuery(orderID kernel.UUID) (GetOrderByIDQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderByIDQuery{}, err
	}

	return GetOrderByIDQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderByIDQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ExtraCostResponse is one applied extra cost in the order projection.
type ExtraCostResponse struct {
	ID    kernel.UUID
	Name  string
	Price float64
}

// GetOrderByIDQueryResponse is the full read model of one order.
type GetOrderByIDQueryResponse struct {
	ID                     kernel.UUID
	ContractID             kernel.UUID
	OperatorID             kernel.UUID
	DriverID               *kernel.UUID
	IncidentCoordinates    kernel.Coordinates
	DestinationCoordinates kernel.Coordinates
	IncidentType           string
	IncidentDate           time.Time
	Status                 string
	TotalCost              float64
	ExtraCosts             []ExtraCostResponse
}
