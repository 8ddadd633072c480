package rider

import (
	"fmt"
	"strings"

	"zapship/internal/pkg/errs"
)

// ApplicationStatus is the review state of a rider application.
// Applications arrive pending, an admin approves or rejects them, and an
// approved application becomes active once the rider is onboarded. Becoming
// active is the transition that promotes the applicant's user record to the
// rider role.
type ApplicationStatus int

const (
	// ApplicationStatusUnknown catches uninitialized values; it never persists.
	ApplicationStatusUnknown ApplicationStatus = iota

	// ApplicationPending means the application awaits admin review.
	ApplicationPending

	// ApplicationApproved means an admin accepted the application.
	ApplicationApproved

	// ApplicationActive means the rider is onboarded and may take deliveries.
	ApplicationActive

	// ApplicationRejected means the application was declined.
	ApplicationRejected
)

func applicationStatusStrings() map[ApplicationStatus]string {
	return map[ApplicationStatus]string{
		ApplicationStatusUnknown: "unknown",
		ApplicationPending:       "pending",
		ApplicationApproved:      "approved",
		ApplicationActive:        "active",
		ApplicationRejected:      "rejected",
	}
}

// ParseApplicationStatus converts a wire-format status into the enum.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	for status, str := range applicationStatusStrings() {
		if status != ApplicationStatusUnknown && str == strings.ToLower(s) {
			return status, nil
		}
	}
	return ApplicationStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"application status",
		fmt.Errorf("%q is not a known application status", s),
	)
}

// Validate rejects ApplicationStatusUnknown and any out-of-range value.
func (s ApplicationStatus) Validate() error {
	if s < ApplicationPending || s > ApplicationRejected {
		return errs.NewValueIsInvalidErrorWithCause(
			"application status",
			fmt.Errorf("%d is not a valid application status", s),
		)
	}
	return nil
}

// String returns the wire-format name of the status.
func (s ApplicationStatus) String() string {
	if str, ok := applicationStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// WorkStatus tracks whether an onboarded rider is free to take a parcel.
type WorkStatus int

const (
	// WorkStatusUnknown catches uninitialized values; it never persists.
	WorkStatusUnknown WorkStatus = iota

	// WorkAvailable means the rider can be assigned a parcel.
	WorkAvailable

	// WorkInDelivery means the rider is occupied with a delivery.
	WorkInDelivery
)

func workStatusStrings() map[WorkStatus]string {
	return map[WorkStatus]string{
		WorkStatusUnknown: "unknown",
		WorkAvailable:     "available",
		WorkInDelivery:    "in_delivery",
	}
}

// ParseWorkStatus converts a wire-format work status into the enum.
// The hyphenated "in-delivery" spelling of the historical clients is accepted.
func ParseWorkStatus(s string) (WorkStatus, error) {
	switch strings.ReplaceAll(strings.ToLower(s), "-", "_") {
	case "available":
		return WorkAvailable, nil
	case "in_delivery":
		return WorkInDelivery, nil
	default:
		return WorkStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"work status",
			fmt.Errorf("%q is not a known work status", s),
		)
	}
}

// Validate rejects WorkStatusUnknown and any out-of-range value.
func (s WorkStatus) Validate() error {
	if s != WorkAvailable && s != WorkInDelivery {
		return errs.NewValueIsInvalidErrorWithCause(
			"work status",
			fmt.Errorf("%d is not a valid work status", s),
		)
	}
	return nil
}

// String returns the wire-format name of the status.
func (s WorkStatus) String() string {
	if str, ok := workStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
