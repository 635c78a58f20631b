package commands

import (
	"errors"

	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/pkg/guard"
)

var ErrRespondToAssignmentCommandIsNotConstructed = errors.New(
	"RespondToAssignmentCommand must be created via NewRespondToAssignmentCommand constructor",
)

// RespondToAssignmentCommand represents the dispatched driver's answer to a
// pending assignment: acceptance or refusal.
type RespondToAssignmentCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID
	accepted bool

	guard guard.ConstructorGuard
}

// NewRespondToAssignmentCommand creates a command carrying the driver's answer.
func NewRespondToAssignmentCommand(
	orderID kernel.UUID,
	driverID kernel.UUID,
	accepted bool,
) (RespondToAssignmentCommand, error) {
	respondCommand := RespondToAssignmentCommand{
		accepted: accepted,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		respondCommand.setOrderID(orderID),
		respondCommand.setDriverID(driverID),
	); err != nil {
		return RespondToAssignmentCommand{}, err
	}

	return respondCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RespondToAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrRespondToAssignmentCommandIsNotConstructed)
}

// OrderID returns the order being answered.
func (c RespondToAssignmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the responding driver.
func (c RespondToAssignmentCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Accepted reports whether the driver took the assignment.
func (c RespondToAssignmentCommand) Accepted() bool {
	return c.accepted
}

func (c *RespondToAssignmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RespondToAssignmentCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
