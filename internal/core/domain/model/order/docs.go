// Package order contains the order aggregate and its supporting domain types
// for the roadside-assistance lifecycle.
//
// The package implements:
//   - Order: aggregate root holding identity, assignment, cost and status
//   - Status: the eight-state lifecycle with a central legal-transition table
//   - IncidentType: the fixed catalog of incident categories
//   - ExtraCost: immutable billable line items scoped to one order
//   - lifecycle domain events consumed by the status saga and notifications
//
// Transition legality is checked in exactly one place, the transition table in
// status.go; command handlers request moves and receive a typed
// StatusTransitionError when the order is in the wrong state.
package order
