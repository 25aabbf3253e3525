package order

import (
	"fmt"

	"oms/internal/pkg/errs"
)

// Status represents the lifecycle state of a translation order.
//
// State transitions:
//
//	Created ──> InProcess
//
// InProcess is entered the moment any order detail's translator offer is
// accepted; repeated acceptances keep the order InProcess. Terminal states
// beyond InProcess belong to downstream collaborators. Deactivation is
// orthogonal and tracked by the order's active flag, not by Status.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status set when an order is constructed.
	Created

	// InProcess indicates at least one translator has accepted a work unit.
	InProcess
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		InProcess: "InProcess",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		InProcess: "InProcess",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Created, InProcess. Unknown (0) and any other
// values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StartProcessing transitions the status to InProcess.
//
// Valid transitions:
//   - Created -> InProcess (first translator acceptance)
//   - InProcess -> InProcess (acceptances on further details)
//
// Returns the new status, or an error if the transition is not allowed.
func (s Status) StartProcessing() (Status, error) {
	if s != Created && s != InProcess {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start processing", s.String()),
		)
	}
	return InProcess, nil
}
