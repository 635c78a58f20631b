package order

import (
	"errors"
	"time"

	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/pkg/errs"
	"assistance/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// ErrExtraCostBelongsToAnotherOrder is returned when applying a line item whose
// order reference does not match the owning order.
var ErrExtraCostBelongsToAnotherOrder = errors.New("extra cost belongs to another order")

// Order is the aggregate root for one roadside-assistance incident request,
// from creation through payment.
//
// Invariants:
//   - status moves only along the legal transition graph (see Status)
//   - total cost is never negative (enforced by kernel.Money)
//   - every applied extra-cost item references this order
//   - a driver reference exists only after assignment; nil means unassigned
//
// The aggregate holds state and per-field validation; which transition a
// business action is allowed to request is decided by the command handlers,
// but the legality of the requested move is checked exactly once, here,
// against the central transition table.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// contractID references the insurance contract the order was opened against
	contractID kernel.UUID

	// operatorID references the operator who registered the incident
	operatorID kernel.UUID

	// driverID is the assigned driver's ID (nil if unassigned)
	driverID *kernel.UUID

	// incidentCoordinates is the geocoded location of the incident
	incidentCoordinates kernel.Coordinates

	// destinationCoordinates is the geocoded tow destination
	destinationCoordinates kernel.Coordinates

	// incidentType is the catalog category of the incident
	incidentType IncidentType

	// incidentDate is the day the incident was reported (date precision)
	incidentDate time.Time

	// extraCosts are the validated billable extras applied to the order
	extraCosts []*ExtraCost

	// totalCost is the current computed charge for the order
	totalCost kernel.Money

	// status is the current state in the order lifecycle
	status Status

	// version is the optimistic-concurrency counter checked by Update
	version int

	// pendingReleaseDriverID records a driver whose remote availability flag
	// still needs to be flipped back after a failed provider call; the sweeper
	// retries these
	pendingReleaseDriverID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in AwaitingAssignment status with zero cost,
// no driver and no extra costs. All identity and value parameters are
// validated; errors are joined so every invalid field is reported at once.
func NewOrder(
	id kernel.UUID,
	contractID kernel.UUID,
	operatorID kernel.UUID,
	incidentCoordinates kernel.Coordinates,
	destinationCoordinates kernel.Coordinates,
	incidentType IncidentType,
	incidentDate time.Time,
) (*Order, error) {
	o := &Order{
		status:       AwaitingAssignment,
		totalCost:    kernel.ZeroMoney(),
		extraCosts:   make([]*ExtraCost, 0),
		incidentDate: incidentDate.Truncate(24 * time.Hour),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setContractID(contractID),
		o.setOperatorID(operatorID),
		o.setIncidentCoordinates(incidentCoordinates),
		o.setDestinationCoordinates(destinationCoordinates),
		o.setIncidentType(incidentType),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its status, assignment, cost state and version. The restored
// order behaves identically to one built through normal domain operations.
func RestoreOrder(
	id kernel.UUID,
	contractID kernel.UUID,
	operatorID kernel.UUID,
	driverID *kernel.UUID,
	incidentCoordinates kernel.Coordinates,
	destinationCoordinates kernel.Coordinates,
	incidentType IncidentType,
	incidentDate time.Time,
	extraCosts []*ExtraCost,
	totalCost kernel.Money,
	status Status,
	version int,
	pendingReleaseDriverID *kernel.UUID,
) (*Order, error) {
	o := &Order{
		incidentDate:           incidentDate,
		totalCost:              totalCost,
		version:                version,
		pendingReleaseDriverID: pendingReleaseDriverID,
		guard:                  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setContractID(contractID),
		o.setOperatorID(operatorID),
		o.setIncidentCoordinates(incidentCoordinates),
		o.setDestinationCoordinates(destinationCoordinates),
		o.setIncidentType(incidentType),
		o.setStatus(status),
		o.setExtraCosts(extraCosts),
	); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
		o.driverID = driverID
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ContractID returns the referenced insurance contract's identifier.
func (o *Order) ContractID() kernel.UUID {
	return o.contractID
}

// OperatorID returns the registering operator's identifier.
func (o *Order) OperatorID() kernel.UUID {
	return o.operatorID
}

// Driver returns the assigned driver's ID, or nil when unassigned.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// IncidentCoordinates returns the geocoded incident location.
func (o *Order) IncidentCoordinates() kernel.Coordinates {
	return o.incidentCoordinates
}

// DestinationCoordinates returns the geocoded tow destination.
func (o *Order) DestinationCoordinates() kernel.Coordinates {
	return o.destinationCoordinates
}

// IncidentType returns the catalog category of the incident.
func (o *Order) IncidentType() IncidentType {
	return o.incidentType
}

// IncidentDate returns the day the incident was reported.
func (o *Order) IncidentDate() time.Time {
	return o.incidentDate
}

// ExtraCosts returns the applied extra-cost line items.
func (o *Order) ExtraCosts() []*ExtraCost {
	return o.extraCosts
}

// ExtraCostPrices returns the prices of all applied line items,
// in application order, as input for the cost calculator.
func (o *Order) ExtraCostPrices() []kernel.Money {
	prices := make([]kernel.Money, 0, len(o.extraCosts))
	for _, ec := range o.extraCosts {
		prices = append(prices, ec.Price())
	}
	return prices
}

// TotalCost returns the current computed charge.
func (o *Order) TotalCost() kernel.Money {
	return o.totalCost
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Version returns the optimistic-concurrency counter loaded from storage.
func (o *Order) Version() int {
	return o.version
}

// PendingReleaseDriver returns the driver whose remote availability flip is
// still outstanding, or nil when none is.
func (o *Order) PendingReleaseDriver() *kernel.UUID {
	return o.pendingReleaseDriverID
}

// TransitionTo moves the order to the target status if the move is legal
// under the transition table. Illegal moves return a StatusTransitionError
// and leave the order unchanged.
func (o *Order) TransitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignDriver records the dispatched driver on the order.
// Which statuses allow dispatching is decided by the transition the caller
// requests next; this method only validates the driver reference itself.
func (o *Order) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	o.driverID = &driverID
	return nil
}

// ReleaseDriver clears the driver reference, returning the order to the
// unassigned sentinel state.
func (o *Order) ReleaseDriver() {
	o.driverID = nil
}

// SetTotalCost replaces the order's computed charge.
// Negative amounts cannot occur: kernel.Money construction already rejects them.
func (o *Order) SetTotalCost(total kernel.Money) {
	o.totalCost = total
}

// ApplyExtraCosts replaces the applied extra-cost list wholesale.
// Every item must reference this order; corrections are applied by replacing
// the list, never by appending, which keeps re-application idempotent.
func (o *Order) ApplyExtraCosts(items []*ExtraCost) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if !item.OrderID().IsEqual(o.id) {
			return ErrExtraCostBelongsToAnotherOrder
		}
	}

	o.extraCosts = items
	return nil
}

// MarkDriverReleasePending records that the remote availability flip for the
// given driver failed after the local state change was already committed.
func (o *Order) MarkDriverReleasePending(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	o.pendingReleaseDriverID = &driverID
	return nil
}

// ClearDriverReleasePending removes the reconciliation marker once the remote
// flip succeeded.
func (o *Order) ClearDriverReleasePending() {
	o.pendingReleaseDriverID = nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setContractID(contractID kernel.UUID) error {
	if err := contractID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("contractId", err)
	}
	o.contractID = contractID
	return nil
}

func (o *Order) setOperatorID(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("operatorId", err)
	}
	o.operatorID = operatorID
	return nil
}

func (o *Order) setIncidentCoordinates(coords kernel.Coordinates) error {
	if err := coords.Validate(); err != nil {
		return err
	}
	o.incidentCoordinates = coords
	return nil
}

func (o *Order) setDestinationCoordinates(coords kernel.Coordinates) error {
	if err := coords.Validate(); err != nil {
		return err
	}
	o.destinationCoordinates = coords
	return nil
}

func (o *Order) setIncidentType(incidentType IncidentType) error {
	if err := incidentType.Validate(); err != nil {
		return err
	}
	o.incidentType = incidentType
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setExtraCosts(items []*ExtraCost) error {
	if items == nil {
		o.extraCosts = make([]*ExtraCost, 0)
		return nil
	}
	return o.ApplyExtraCosts(items)
}
