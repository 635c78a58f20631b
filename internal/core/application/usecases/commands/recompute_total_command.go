package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/pkg/errs"
	"assistance/internal/pkg/guard"
)

var ErrRecomputeTotalCommandIsNotConstructed = errors.New(
	"RecomputeTotalCommand must be created via NewRecomputeTotalCommand constructor",
)

// RecomputeTotalCommand represents a request to recompute an order's total
// cost from its contract policy, the distance travelled and the applied
// extra costs. Recomputation is legal in any status so corrections can be
// made even after completion.
type RecomputeTotalCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	kmTraveled decimal.Decimal

	guard guard.ConstructorGuard
}

// NewRecomputeTotalCommand creates a command to recompute the order total.
// kmTraveled must be non-negative.
func NewRecomputeTotalCommand(
	orderID kernel.UUID,
	kmTraveled decimal.Decimal,
) (RecomputeTotalCommand, error) {
	recomputeCommand := RecomputeTotalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		recomputeCommand.setOrderID(orderID),
		recomputeCommand.setKmTraveled(kmTraveled),
	); err != nil {
		return RecomputeTotalCommand{}, err
	}

	return recomputeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RecomputeTotalCommand) Validate() error {
	return c.guard.Validate(ErrRecomputeTotalCommandIsNotConstructed)
}

// OrderID returns the order whose total is recomputed.
func (c RecomputeTotalCommand) OrderID() kernel.UUID {
	return c.orderID
}

// KmTraveled returns the distance driven for the assistance.
func (c RecomputeTotalCommand) KmTraveled() decimal.Decimal {
	return c.kmTraveled
}

func (c *RecomputeTotalCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecomputeTotalCommand) setKmTraveled(kmTraveled decimal.Decimal) error {
	if kmTraveled.IsNegative() {
		return errs.NewValueIsInvalidError("kmTraveled")
	}

	c.kmTraveled = kmTraveled
	return nil
}
