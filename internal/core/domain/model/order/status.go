package order

import (
	"fmt"

	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfilment workflow.
//
// State transitions:
//
//	Created ──> Preparing ──> Dispatched ──> Delivered
//	                 ^             │
//	                 └─────────────┘
//	          (return-to-preparation allowed)
//
// Each status has a numeric level (Created=1 .. Delivered=4). A transition is
// legal when it keeps the same level, advances exactly one level, or is the
// single permitted regression from Dispatched back to Preparing, which models
// a returned shipment re-entering preparation.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first registered.
	Created

	// Preparing indicates the order is being prepared for shipment.
	Preparing

	// Dispatched indicates the order has left for delivery.
	Dispatched

	// Delivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Created:    "CREATED",
		Preparing:  "PREPARING",
		Dispatched: "DISPATCHED",
		Delivered:  "DELIVERED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:    "CREATED",
		Preparing:  "PREPARING",
		Dispatched: "DISPATCHED",
		Delivered:  "DELIVERED",
	}
}

// StatusFromString parses the wire representation of a status
// ("CREATED", "PREPARING", "DISPATCHED", "DELIVERED").
//
// Returns a ValueIsInvalidError for any other input, so callers at the API
// boundary can surface the invalid enum value as a validation failure.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not one of CREATED, PREPARING, DISPATCHED, DELIVERED", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, Preparing, Dispatched, Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("CREATED", "PREPARING", ...).
// Invalid values yield "UNKNOWN". Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Level returns the numeric progression level of the status
// (Created=1, Preparing=2, Dispatched=3, Delivered=4).
func (s Status) Level() int {
	return int(s)
}

// TransitionTo validates a transition from the current status to target and
// returns the resulting status.
//
// Legal transitions:
//   - same status (idempotent no-op at the caller's discretion)
//   - exactly one level forward
//   - Dispatched -> Preparing (the sole permitted regression)
//
// Any other combination returns a ValueIsInvalidError naming both states.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if target == s || target.Level() == s.Level()+1 {
		return target, nil
	}
	if s == Dispatched && target == Preparing {
		return target, nil
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status transition is invalid",
		fmt.Errorf("transition from %s to %s is not allowed, order must progress sequentially", s, target),
	)
}
