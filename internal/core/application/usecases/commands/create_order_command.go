package commands

import (
	"errors"
	"time"

	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/core/domain/model/order"
	"assistance/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrIncidentAddressIsRequired    = errors.New("incident address is required")
	ErrDestinationAddressIsRequired = errors.New("destination address is required")
	ErrIncidentDateIsRequired       = errors.New("incident date is required")
)

// CreateOrderCommand represents a request to open a new roadside assistance
// order against an insurance contract. Carries the street addresses of the
// incident and the tow destination; geocoding happens in the handler.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), contractID, operatorID,
//	    "Calle Mayor 12, Madrid", "Taller Central, Getafe",
//	    order.IncidentTypeFlatTire, time.Now(),
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, geocoder, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	contractID         kernel.UUID
	operatorID         kernel.UUID
	incidentAddress    string
	destinationAddress string
	incidentType       order.IncidentType
	incidentDate       time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new assistance order.
// Validates that all identifiers are valid, both addresses are present, the
// incident type is recognized and the incident date is set.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	contractID kernel.UUID,
	operatorID kernel.UUID,
	incidentAddress string,
	destinationAddress string,
	incidentType order.IncidentType,
	incidentDate time.Time,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setContractID(contractID),
		orderCommand.setOperatorID(operatorID),
		orderCommand.setIncidentAddress(incidentAddress),
		orderCommand.setDestinationAddress(destinationAddress),
		orderCommand.setIncidentType(incidentType),
		orderCommand.setIncidentDate(incidentDate),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ContractID returns the insurance contract the order is opened against.
func (c CreateOrderCommand) ContractID() kernel.UUID {
	return c.contractID
}

// OperatorID returns the call-center operator opening the order.
func (c CreateOrderCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

// IncidentAddress returns the street address where assistance is needed.
func (c CreateOrderCommand) IncidentAddress() string {
	return c.incidentAddress
}

// DestinationAddress returns the street address the vehicle is towed to.
func (c CreateOrderCommand) DestinationAddress() string {
	return c.destinationAddress
}

// IncidentType returns the category of the reported incident.
func (c CreateOrderCommand) IncidentType() order.IncidentType {
	return c.incidentType
}

// IncidentDate returns the calendar date of the incident.
func (c CreateOrderCommand) IncidentDate() time.Time {
	return c.incidentDate
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setContractID(contractID kernel.UUID) error {
	if err := contractID.Validate(); err != nil {
		return err
	}

	c.contractID = contractID
	return nil
}

func (c *CreateOrderCommand) setOperatorID(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}

	c.operatorID = operatorID
	return nil
}

func (c *CreateOrderCommand) setIncidentAddress(address string) error {
	if address == "" {
		return ErrIncidentAddressIsRequired
	}

	c.incidentAddress = address
	return nil
}

func (c *CreateOrderCommand) setDestinationAddress(address string) error {
	if address == "" {
		return ErrDestinationAddressIsRequired
	}

	c.destinationAddress = address
	return nil
}

func (c *CreateOrderCommand) setIncidentType(incidentType order.IncidentType) error {
	if err := incidentType.Validate(); err != nil {
		return err
	}

	c.incidentType = incidentType
	return nil
}

func (c *CreateOrderCommand) setIncidentDate(incidentDate time.Time) error {
	if incidentDate.IsZero() {
		return ErrIncidentDateIsRequired
	}

	c.incidentDate = incidentDate
	return nil
}
