package order

import (
	"errors"
	"fmt"
	"strings"

	"assistance/internal/pkg/errs"
)

// Status represents the lifecycle state of a roadside-assistance order.
//
// State transitions:
//
//	AwaitingAssignment ──> AwaitingDriverResponse ──> Accepted ──> Located ──> InProgress ──> Completed ──> Paid
//	        ^                        │                                │             │
//	        └────────────────────────┘                                └──> Cancelled <──┘
//	        (refusal or timeout)
//
// Paid and Cancelled are terminal. The full legal graph lives in a single
// transition table consulted by CanTransitionTo; handlers never compare
// statuses by hand.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// AwaitingAssignment is the initial status: the order exists but no
	// driver has been dispatched yet.
	AwaitingAssignment

	// AwaitingDriverResponse means a driver was dispatched and has not yet
	// accepted or refused the assignment.
	AwaitingDriverResponse

	// Accepted means the dispatched driver accepted the assignment.
	Accepted

	// Located means the driver confirmed arrival at the incident site.
	Located

	// InProgress means remediation work on the vehicle has started.
	InProgress

	// Completed means the work finished and the driver was released.
	Completed

	// Paid means payment for the completed order was confirmed. Terminal.
	Paid

	// Cancelled means the order was aborted after the driver was on site. Terminal.
	Cancelled
)

// ErrIllegalStatusTransition is the errors.Is target for every rejected transition.
var ErrIllegalStatusTransition = errors.New("illegal order status transition")

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                "Unknown",
		AwaitingAssignment:     "AwaitingAssignment",
		AwaitingDriverResponse: "AwaitingDriverResponse",
		Accepted:               "Accepted",
		Located:                "Located",
		InProgress:             "InProgress",
		Completed:              "Completed",
		Paid:                   "Paid",
		Cancelled:              "Cancelled",
	}
}

// transitionGraph is the single source of truth for legal status transitions.
func transitionGraph() map[Status][]Status {
	return map[Status][]Status{
		AwaitingAssignment:     {AwaitingDriverResponse},
		AwaitingDriverResponse: {Accepted, AwaitingAssignment},
		Accepted:               {Located},
		Located:                {InProgress, Cancelled},
		InProgress:             {Completed, Cancelled},
		Completed:              {Paid},
		Paid:                   {},
		Cancelled:              {},
	}
}

// Validate checks that the Status is one of the recognized lifecycle values.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := transitionGraph()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status name, or "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString resolves a status name to its Status value.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a recognized status", s),
	)
}

// IsTerminal reports whether no further transitions exist from this status.
func (s Status) IsTerminal() bool {
	return len(transitionGraph()[s]) == 0 && s.Validate() == nil
}

// CanTransitionTo reports whether moving from s to target is legal.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitionGraph()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target if the move is legal, or a StatusTransitionError
// naming the status the order would have to be in.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, &StatusTransitionError{Current: s, Target: target}
	}
	return target, nil
}

// sourcesOf returns every status from which target is directly reachable.
func sourcesOf(target Status) []Status {
	var sources []Status
	for _, s := range []Status{
		AwaitingAssignment, AwaitingDriverResponse, Accepted,
		Located, InProgress, Completed, Paid, Cancelled,
	} {
		if s.CanTransitionTo(target) {
			sources = append(sources, s)
		}
	}
	return sources
}

// StatusTransitionError is the typed precondition-violation failure returned
// when an order is not in a status from which the requested move is legal.
type StatusTransitionError struct {
	Current Status
	Target  Status
}

func (e *StatusTransitionError) Error() string {
	names := make([]string, 0, 2)
	for _, s := range sourcesOf(e.Target) {
		names = append(names, s.String())
	}
	return fmt.Sprintf("order is not in the %s status (current status is %s)",
		strings.Join(names, " or "), e.Current)
}

func (e *StatusTransitionError) Unwrap() error {
	return ErrIllegalStatusTransition
}
