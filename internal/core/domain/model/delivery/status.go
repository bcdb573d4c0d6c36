package delivery

import (
	"fmt"
	"strings"

	"boozebuddies/internal/pkg/errs"
)

// Status represents the fulfillment state of a delivery.
//
// State transitions:
//
//	Pending ──> Assigned ──> PickedUp ──> InTransit ──> Delivered
//	   │            │            │             │
//	   └────────────┴────────────┴─────────────┴──> Cancelled / Failed
//
// Delivered, Cancelled, and Failed are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a delivery created with its order.
	StatusPending

	// StatusAssigned indicates a driver has been bound to the delivery.
	StatusAssigned

	// StatusPickedUp indicates the driver has collected the order.
	StatusPickedUp

	// StatusInTransit indicates the driver is en route to the customer.
	StatusInTransit

	// StatusDelivered indicates successful handoff. Terminal.
	StatusDelivered

	// StatusFailed indicates the delivery could not be completed. Terminal.
	StatusFailed

	// StatusCancelled indicates the delivery was called off. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusPending:   "PENDING",
		StatusAssigned:  "ASSIGNED",
		StatusPickedUp:  "PICKED_UP",
		StatusInTransit: "IN_TRANSIT",
		StatusDelivered: "DELIVERED",
		StatusFailed:    "FAILED",
		StatusCancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "PENDING",
		StatusAssigned:  "ASSIGNED",
		StatusPickedUp:  "PICKED_UP",
		StatusInTransit: "IN_TRANSIT",
		StatusDelivered: "DELIVERED",
		StatusFailed:    "FAILED",
		StatusCancelled: "CANCELLED",
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
		"delivery status",
		fmt.Errorf("%q is not a recognized delivery status", s),
	)
}

// Validate checks that the Status holds one of the defined values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery status",
			fmt.Errorf("%d is not a valid delivery status", s),
		)
	}
	return nil
}

// String returns the persistence/display name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further status update may leave this status.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusFailed || s == StatusCancelled
}
