package order

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStatus is returned when a status value is outside the fixed
	// enumerated set, e.g. an unrecognized string submitted from a form.
	ErrInvalidStatus = errors.New("status is not a known order status")

	// ErrIllegalStatusTransition is returned when a requested transition is
	// not in the workflow table, including any transition out of a terminal
	// status.
	ErrIllegalStatusTransition = errors.New("status transition is not allowed")
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so that orders
// follow the kitchen's workflow and nothing else.
//
// State transitions:
//
//	Pending ──┬──> Confirmed ──> Preparing ──> Completed
//	          │
//	          └──> Cancelled
//
// Cancelled and Completed are terminal. Status changes are applied only
// through TransitionTo, which rejects anything outside this table; a raw
// status overwrite never happens.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every order produced by checkout.
	Pending

	// Confirmed indicates an administrator accepted the order.
	Confirmed

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// Completed indicates the order was handed over. Terminal.
	Completed

	// Cancelled indicates the order was rejected while still pending. Terminal.
	Cancelled
)

// getStatusStrings returns the string representation of every Status,
// including Unknown, for display purposes.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Preparing: "preparing",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns only the statuses an order may actually hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		Preparing: "preparing",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// getTransitions returns the workflow table. A status missing from the map,
// or mapped to an empty set, is terminal.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Confirmed, Cancelled},
		Confirmed: {Preparing},
		Preparing: {Completed},
	}
}

// ParseStatus converts an external status string, such as a form value, into
// a Status. Matching is exact and lowercase. Returns ErrInvalidStatus for
// anything outside the enumerated set, including "unknown".
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Validate checks that the Status value is inside the enumerated set.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d", ErrInvalidStatus, int(s))
	}
	return nil
}

// String returns the lowercase name of the status, or "unknown" for
// invalid values. Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s Status) IsTerminal() bool {
	if s.Validate() != nil {
		return false
	}
	return len(getTransitions()[s]) == 0
}

// CanTransitionTo reports whether the workflow table allows moving from s
// to next. Both statuses must be valid.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a workflow transition.
//
// Returns:
//   - (next, nil) when the transition is in the workflow table
//   - (Unknown, ErrInvalidStatus) when next is outside the enumerated set
//   - (Unknown, ErrIllegalStatusTransition) when next is a valid status but
//     the move is not allowed from s, including any move out of a terminal
//     status
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if err := s.Validate(); err != nil {
		return Unknown, err
	}

	if !s.CanTransitionTo(next) {
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrIllegalStatusTransition, s, next)
	}

	return next, nil
}
