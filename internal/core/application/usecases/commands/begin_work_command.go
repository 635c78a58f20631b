package commands

import (
	"errors"

	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/pkg/guard"
)

var ErrBeginWorkCommandIsNotConstructed = errors.New(
	"BeginWorkCommand must be created via NewBeginWorkCommand constructor",
)

// BeginWorkCommand represents the driver starting the assistance work
// (towing, repair, fuel delivery) at the incident scene.
type BeginWorkCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewBeginWorkCommand creates a command to record the start of the work.
func NewBeginWorkCommand(orderID kernel.UUID) (BeginWorkCommand, error) {
	if err := orderID.Validate(); err != nil {
		return BeginWorkCommand{}, err
	}

	return BeginWorkCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c BeginWorkCommand) Validate() error {
	return c.guard.Validate(ErrBeginWorkCommandIsNotConstructed)
}

// OrderID returns the order the work started on.
func (c BeginWorkCommand) OrderID() kernel.UUID {
	return c.orderID
}
