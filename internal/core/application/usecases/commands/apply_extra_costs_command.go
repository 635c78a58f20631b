package commands

import (
	"errors"

	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/core/domain/services"
	"assistance/internal/pkg/guard"
)

var (
	ErrApplyExtraCostsCommandIsNotConstructed = errors.New(
		"ApplyExtraCostsCommand must be created via NewApplyExtraCostsCommand constructor",
	)
	ErrExtraCostNameIsRequired = errors.New("extra cost name is required")
)

// ApplyExtraCostsCommand represents a request to replace the set of extra
// costs billed on an order. The list replaces the previous one wholesale;
// submitting a corrected list is how mistakes are fixed. An empty list
// clears all extra costs.
type ApplyExtraCostsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	items   []services.ProposedExtraCost

	guard guard.ConstructorGuard
}

// NewApplyExtraCostsCommand creates a command carrying the proposed extra
// costs. Catalog membership is checked later by the validation pipeline;
// here only the basic shape is enforced.
func NewApplyExtraCostsCommand(
	orderID kernel.UUID,
	items []services.ProposedExtraCost,
) (ApplyExtraCostsCommand, error) {
	applyCommand := ApplyExtraCostsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		applyCommand.setOrderID(orderID),
		applyCommand.setItems(items),
	); err != nil {
		return ApplyExtraCostsCommand{}, err
	}

	return applyCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyExtraCostsCommand) Validate() error {
	return c.guard.Validate(ErrApplyExtraCostsCommandIsNotConstructed)
}

// OrderID returns the order the extra costs belong to.
func (c ApplyExtraCostsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the proposed extra costs.
func (c ApplyExtraCostsCommand) Items() []services.ProposedExtraCost {
	return c.items
}

func (c *ApplyExtraCostsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ApplyExtraCostsCommand) setItems(items []services.ProposedExtraCost) error {
	for _, item := range items {
		if item.Name == "" {
			return ErrExtraCostNameIsRequired
		}
	}

	c.items = items
	return nil
}
