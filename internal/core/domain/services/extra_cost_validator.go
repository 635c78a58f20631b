package services

import (
	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/core/domain/model/order"
)

// ProposedExtraCost is one line item proposed by a driver or operator before
// validation: a catalog name and a price.
type ProposedExtraCost struct {
	Name  string
	Price kernel.Money
}

// ExtraCostValidator turns proposed line items into validated ExtraCost
// entities scoped to one order. Unknown catalog names fail the whole batch;
// partial application would leave the order's list ambiguous.
type ExtraCostValidator struct{}

// NewExtraCostValidator creates an extra-cost validator.
func NewExtraCostValidator() ExtraCostValidator {
	return ExtraCostValidator{}
}

// ValidateAndBuild checks every proposed item against the recognized catalog
// and builds the ExtraCost entities for the given order. The returned slice is
// meant to replace the order's applied list wholesale via ApplyExtraCosts.
func (ExtraCostValidator) ValidateAndBuild(
	orderID kernel.UUID,
	proposed []ProposedExtraCost,
) ([]*order.ExtraCost, error) {
	items := make([]*order.ExtraCost, 0, len(proposed))
	for _, p := range proposed {
		item, err := order.NewExtraCost(kernel.NewUUID(), orderID, p.Name, p.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
