package order

import (
	"fmt"
	"strings"

	"boozebuddies/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> ReadyForPickup ──> Completed
//	   │            │             │               │
//	   └────────────┴─────────────┴───────────────┴──> Cancelled
//
// Completed and Cancelled are terminal; no transition leaves them.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of every newly created order.
	StatusPending

	// StatusConfirmed indicates the merchant has accepted the order.
	StatusConfirmed

	// StatusPreparing indicates the merchant is assembling the order.
	StatusPreparing

	// StatusReadyForPickup indicates the order is awaiting driver pickup.
	StatusReadyForPickup

	// StatusCompleted indicates the order has been fulfilled. Terminal.
	StatusCompleted

	// StatusCancelled indicates the order was cancelled before completion. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "UNKNOWN",
		StatusPending:        "PENDING",
		StatusConfirmed:      "CONFIRMED",
		StatusPreparing:      "PREPARING",
		StatusReadyForPickup: "READY_FOR_PICKUP",
		StatusCompleted:      "COMPLETED",
		StatusCancelled:      "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:        "PENDING",
		StatusConfirmed:      "CONFIRMED",
		StatusPreparing:      "PREPARING",
		StatusReadyForPickup: "READY_FOR_PICKUP",
		StatusCompleted:      "COMPLETED",
		StatusCancelled:      "CANCELLED",
	}
}

// ParseStatus converts API-boundary text into a Status, matching
// case-insensitively. Unrecognized text is rejected rather than defaulted.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"order status",
		fmt.Errorf("%q is not a recognized order status", s),
	)
}

// Validate checks that the Status holds one of the defined lifecycle values.
// StatusUnknown and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("%d is not a valid order status", s),
		)
	}
	return nil
}

// String returns the persistence/display name of the status.
// Safe to call on any value; invalid values render as "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition may leave this status.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether moving from the receiver to target is a
// legal lifecycle step. The forward chain advances one stage at a time, and
// Cancelled is reachable from every non-terminal status.
func (s Status) CanTransitionTo(target Status) bool {
	if target == StatusCancelled {
		return !s.IsTerminal()
	}

	switch s {
	case StatusPending:
		return target == StatusConfirmed
	case StatusConfirmed:
		return target == StatusPreparing
	case StatusPreparing:
		return target == StatusReadyForPickup
	case StatusReadyForPickup:
		return target == StatusCompleted
	default:
		return false
	}
}
