package order

import (
	"fmt"

	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/pkg/errs"
	"assistance/internal/pkg/guard"
)

// ErrExtraCostIsNotConstructed is returned when using an improperly initialized ExtraCost.
var ErrExtraCostIsNotConstructed = errs.NewValueIsRequiredError(
	"ExtraCost must be created via NewExtraCost constructor")

// extraCostCatalog is the recognized set of billable extra services.
// The validator and this constructor share it as the single source of truth.
func extraCostCatalog() map[string]struct{} {
	return map[string]struct{}{
		"Grua Adicional":            {},
		"Cerrajeria":                {},
		"Cambio de Neumatico":       {},
		"Suministro de Combustible": {},
		"Peaje":                     {},
		"Estacionamiento":           {},
		"Pernocta":                  {},
	}
}

// IsRecognizedExtraCostName reports whether name belongs to the extra-cost catalog.
func IsRecognizedExtraCostName(name string) bool {
	_, ok := extraCostCatalog()[name]
	return ok
}

// ExtraCost is a billable line item applied to an order beyond the base
// incident coverage. It is immutable once created: corrections are applied by
// replacing the whole list on the owning order, never by editing items.
type ExtraCost struct {
	id      kernel.UUID
	orderID kernel.UUID
	name    string
	price   kernel.Money
	guard   guard.ConstructorGuard
}

// NewExtraCost creates an extra-cost line item scoped to the given order.
// The name must belong to the recognized service catalog and the price is a
// validated non-negative amount.
func NewExtraCost(id, orderID kernel.UUID, name string, price kernel.Money) (*ExtraCost, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if !IsRecognizedExtraCostName(name) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"extraCostName",
			fmt.Errorf("%q is not a recognized extra cost", name),
		)
	}

	return &ExtraCost{
		id:      id,
		orderID: orderID,
		name:    name,
		price:   price,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item was created through NewExtraCost.
func (e *ExtraCost) Validate() error {
	if e == nil {
		return ErrExtraCostIsNotConstructed
	}
	return e.guard.Validate(ErrExtraCostIsNotConstructed)
}

// ID returns the line item's unique identifier.
func (e *ExtraCost) ID() kernel.UUID {
	return e.id
}

// OrderID returns the identifier of the owning order.
func (e *ExtraCost) OrderID() kernel.UUID {
	return e.orderID
}

// Name returns the catalog name of the extra service.
func (e *ExtraCost) Name() string {
	return e.name
}

// Price returns the billed amount for the extra service.
func (e *ExtraCost) Price() kernel.Money {
	return e.price
}
