// Package contract holds the boundary model of the insurance contract and its
// policy coverage terms. Contracts are owned by another bounded context; the
// lifecycle core only ever reads them, so the model stays deliberately small.
package contract

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/pkg/errs"
	"assistance/internal/pkg/guard"
)

// ErrContractIsNotConstructed is returned when using an improperly initialized Contract.
var ErrContractIsNotConstructed = errors.New("Contract must be created via NewContract constructor")

// Policy carries the coverage terms the cost calculator works from:
// how many kilometers the policy covers, the flat amount charged per covered
// incident, and the price of each kilometer beyond the allowance.
type Policy struct {
	coveredKm       decimal.Decimal
	flatCoverage    kernel.Money
	pricePerExtraKm kernel.Money
}

// NewPolicy creates a Policy value. The kilometer allowance must be non-negative;
// the amounts are already validated non-negative by kernel.Money.
func NewPolicy(coveredKm decimal.Decimal, flatCoverage, pricePerExtraKm kernel.Money) (Policy, error) {
	if coveredKm.IsNegative() {
		return Policy{}, errs.NewValueIsInvalidErrorWithCause(
			"coveredKm",
			fmt.Errorf("%s is negative", coveredKm),
		)
	}
	return Policy{
		coveredKm:       coveredKm,
		flatCoverage:    flatCoverage,
		pricePerExtraKm: pricePerExtraKm,
	}, nil
}

// CoveredKm returns the kilometer allowance included in the coverage.
func (p Policy) CoveredKm() decimal.Decimal {
	return p.coveredKm
}

// FlatCoverage returns the flat amount charged per covered incident.
func (p Policy) FlatCoverage() kernel.Money {
	return p.flatCoverage
}

// PricePerExtraKm returns the price of each kilometer beyond the allowance.
func (p Policy) PricePerExtraKm() kernel.Money {
	return p.pricePerExtraKm
}

// Contract is the read-only projection of an insurance contract as the
// lifecycle core sees it: identity, the insured vehicle's plate, the policy
// terms and whether the contract is currently active.
type Contract struct {
	id           kernel.UUID
	vehiclePlate string
	policy       Policy
	active       bool
	guard        guard.ConstructorGuard
}

// NewContract creates a Contract projection with validated identity.
func NewContract(id kernel.UUID, vehiclePlate string, policy Policy, active bool) (*Contract, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if vehiclePlate == "" {
		return nil, errs.NewValueIsRequiredError("vehiclePlate")
	}

	return &Contract{
		id:           id,
		vehiclePlate: vehiclePlate,
		policy:       policy,
		active:       active,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Contract was created through NewContract.
func (c *Contract) Validate() error {
	if c == nil {
		return ErrContractIsNotConstructed
	}
	return c.guard.Validate(ErrContractIsNotConstructed)
}

// ID returns the contract's unique identifier.
func (c *Contract) ID() kernel.UUID {
	return c.id
}

// VehiclePlate returns the insured vehicle's license plate.
func (c *Contract) VehiclePlate() string {
	return c.vehiclePlate
}

// Policy returns the coverage terms.
func (c *Contract) Policy() Policy {
	return c.policy
}

// IsActive reports whether the contract is currently active.
func (c *Contract) IsActive() bool {
	return c.active
}
