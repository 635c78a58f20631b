package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"assistance/internal/core/domain/model/contract"
	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/pkg/errs"
)

// CostCalculator computes the total charge for an order from the policy's
// coverage terms, the distance actually traveled and the extra costs already
// applied. It is a pure domain service: no I/O, no state.
//
// Pricing rule:
//   - traveled <= covered allowance: the incident portion is the flat coverage amount
//   - traveled > allowance: flat amount plus (traveled - allowance) * price per extra km
//   - the final total adds the sum of all applied extra-cost prices
//
// The result can never be negative: every input amount is a non-negative
// kernel.Money and the excess distance factor is only applied when positive.
type CostCalculator struct{}

// NewCostCalculator creates a cost calculator.
func NewCostCalculator() CostCalculator {
	return CostCalculator{}
}

// ComputeTotal applies the pricing rule to the given policy and usage.
// kmTraveled must be non-negative.
func (CostCalculator) ComputeTotal(
	kmTraveled decimal.Decimal,
	policy contract.Policy,
	appliedExtraCosts []kernel.Money,
) (kernel.Money, error) {
	if kmTraveled.IsNegative() {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
			"kmTraveled",
			fmt.Errorf("%s is negative", kmTraveled),
		)
	}

	total := policy.FlatCoverage()

	if excess := kmTraveled.Sub(policy.CoveredKm()); excess.IsPositive() {
		total = total.Add(policy.PricePerExtraKm().MulDecimal(excess))
	}

	for _, price := range appliedExtraCosts {
		total = total.Add(price)
	}

	return total, nil
}
