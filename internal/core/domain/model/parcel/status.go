package parcel

import (
	"fmt"
	"strings"

	"zapship/internal/pkg/errs"
)

// DeliveryStatus is the parcel's position in the fulfillment pipeline.
// It advances through:
//
//	not_collected ──> rider_assigned ──> in_transit ──> delivered ──> service_center_delivered
//	                        ^
//	                        └── AssignRider may (re)enter from any status
//
// Entering in_transit stamps picked_up_at and entering delivered stamps
// delivered_at; both stamps are set once and never overwritten.
type DeliveryStatus int

const (
	// DeliveryStatusUnknown catches uninitialized values; it never persists.
	DeliveryStatusUnknown DeliveryStatus = iota

	// NotCollected is the initial status: the parcel is paid for (or awaiting
	// payment) but no rider has picked it up.
	NotCollected

	// RiderAssigned means a rider has been matched to the parcel.
	RiderAssigned

	// InTransit means the rider has collected the parcel and is moving it.
	InTransit

	// Delivered means the parcel reached its receiver. Earnings accrue from
	// this status, and cash-out becomes possible.
	Delivered

	// ServiceCenterDelivered is the terminal branch for parcels handed over
	// to a destination service center instead of a door delivery.
	ServiceCenterDelivered
)

func deliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		DeliveryStatusUnknown:  "unknown",
		NotCollected:           "not_collected",
		RiderAssigned:          "rider_assigned",
		InTransit:              "in_transit",
		Delivered:              "delivered",
		ServiceCenterDelivered: "service_center_delivered",
	}
}

func validDeliveryStatusStrings() map[DeliveryStatus]string {
	//nolint:exhaustive // DeliveryStatusUnknown is intentionally excluded
	return map[DeliveryStatus]string{
		NotCollected:           "not_collected",
		RiderAssigned:          "rider_assigned",
		InTransit:              "in_transit",
		Delivered:              "delivered",
		ServiceCenterDelivered: "service_center_delivered",
	}
}

// ParseDeliveryStatus converts a wire-format status into the closed enum.
// The vocabulary is strict: unknown strings are rejected rather than stored
// verbatim. Hyphenated spellings ("in-transit") are accepted because the
// historical clients sent them.
func ParseDeliveryStatus(s string) (DeliveryStatus, error) {
	if s == "" {
		return DeliveryStatusUnknown, errs.NewValueIsRequiredError("delivery status")
	}

	normalized := strings.ReplaceAll(strings.ToLower(s), "-", "_")
	for status, str := range validDeliveryStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}

	return DeliveryStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"delivery status",
		fmt.Errorf("%q is not a known delivery status", s),
	)
}

// Validate rejects DeliveryStatusUnknown and any out-of-range value.
func (s DeliveryStatus) Validate() error {
	if _, ok := validDeliveryStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery status",
			fmt.Errorf("%d is not a valid delivery status", s),
		)
	}
	return nil
}

// String returns the wire-format name of the status.
func (s DeliveryStatus) String() string {
	if str, ok := deliveryStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StampsPickup reports whether entering this status records the pickup time.
func (s DeliveryStatus) StampsPickup() bool {
	return s == InTransit
}

// StampsDelivery reports whether entering this status records the delivery time.
func (s DeliveryStatus) StampsDelivery() bool {
	return s == Delivered
}

// ValidateCashOut checks that a parcel in this status may be cashed out.
// Only delivered parcels carry an earned amount to settle.
func (s DeliveryStatus) ValidateCashOut() error {
	if s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery status",
			fmt.Errorf("%s is not a valid status to cash out", s.String()),
		)
	}
	return nil
}
