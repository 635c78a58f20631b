package commands

import (
	"errors"

	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/pkg/guard"
)

var ErrCompleteWorkCommandIsNotConstructed = errors.New(
	"CompleteWorkCommand must be created via NewCompleteWorkCommand constructor",
)

// CompleteWorkCommand represents the driver finishing the assistance work.
type CompleteWorkCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteWorkCommand creates a command to record the end of the work.
func NewCompleteWorkCommand(orderID kernel.UUID) (CompleteWorkCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CompleteWorkCommand{}, err
	}

	return CompleteWorkCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteWorkCommand) Validate() error {
	return c.guard.Validate(ErrCompleteWorkCommandIsNotConstructed)
}

// OrderID returns the completed order.
func (c CompleteWorkCommand) OrderID() kernel.UUID {
	return c.orderID
}
