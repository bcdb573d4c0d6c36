package payment

import (
	"fmt"
	"strings"

	"boozebuddies/internal/pkg/errs"
)

// Status represents the state of a single ledger record. Records are
// append-only, so a Status never changes after the record is written.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending indicates an authorization attempt that has not settled.
	StatusPending

	// StatusAuthorized indicates funds were successfully authorized.
	StatusAuthorized

	// StatusCaptured indicates authorized funds were captured.
	StatusCaptured

	// StatusFailed indicates the authorization attempt failed.
	StatusFailed

	// StatusRefunded indicates this record reverses a prior authorization.
	StatusRefunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "UNKNOWN",
		StatusPending:    "PENDING",
		StatusAuthorized: "AUTHORIZED",
		StatusCaptured:   "CAPTURED",
		StatusFailed:     "FAILED",
		StatusRefunded:   "REFUNDED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:    "PENDING",
		StatusAuthorized: "AUTHORIZED",
		StatusCaptured:   "CAPTURED",
		StatusFailed:     "FAILED",
		StatusRefunded:   "REFUNDED",
	}
}

// Validate checks that the Status holds one of the defined values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status",
			fmt.Errorf("%d is not a valid payment status", s),
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

// ParseStatus converts a case-insensitive status name into a Status.
func ParseStatus(name string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	for status, str := range getValidStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment status",
		fmt.Errorf("%q is not a valid payment status", name),
	)
}
