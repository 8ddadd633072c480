package parcel

import (
	"fmt"

	"zapship/internal/pkg/errs"
)

// PaymentStatus records whether the sender has paid the delivery fee.
// Payment is orthogonal to the delivery pipeline: marking a parcel paid
// resets delivery_status to not_collected, which is what makes the parcel
// assignable.
type PaymentStatus int

const (
	// PaymentStatusUnknown catches uninitialized values; it never persists.
	PaymentStatusUnknown PaymentStatus = iota

	// Unpaid is the initial payment status at parcel creation.
	Unpaid

	// Paid means a payment ledger entry exists for the parcel.
	Paid
)

func paymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown: "unknown",
		Unpaid:               "unpaid",
		Paid:                 "paid",
	}
}

// ParsePaymentStatus converts a wire-format payment status into the enum.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch s {
	case "unpaid":
		return Unpaid, nil
	case "paid":
		return Paid, nil
	default:
		return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"payment status",
			fmt.Errorf("%q is not a known payment status", s),
		)
	}
}

// Validate rejects PaymentStatusUnknown and any out-of-range value.
func (s PaymentStatus) Validate() error {
	if s != Unpaid && s != Paid {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// String returns the wire-format name of the status.
func (s PaymentStatus) String() string {
	if str, ok := paymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
