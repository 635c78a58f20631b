package commands

import (
	"errors"

	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/pkg/guard"
)

var ErrConfirmArrivalCommandIsNotConstructed = errors.New(
	"ConfirmArrivalCommand must be created via NewConfirmArrivalCommand constructor",
)

// ConfirmArrivalCommand represents the driver reporting arrival at the
// incident location.
type ConfirmArrivalCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmArrivalCommand creates a command to record the driver's arrival.
func NewConfirmArrivalCommand(orderID kernel.UUID) (ConfirmArrivalCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ConfirmArrivalCommand{}, err
	}

	return ConfirmArrivalCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmArrivalCommand) Validate() error {
	return c.guard.Validate(ErrConfirmArrivalCommandIsNotConstructed)
}

// OrderID returns the order the driver arrived for.
func (c ConfirmArrivalCommand) OrderID() kernel.UUID {
	return c.orderID
}
