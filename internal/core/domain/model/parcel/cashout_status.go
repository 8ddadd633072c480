package parcel

import (
	"fmt"

	"zapship/internal/pkg/errs"
)

// CashoutStatus tracks whether the rider's earning for a delivered parcel
// has been settled. It is an independent axis from DeliveryStatus and only
// becomes meaningful once the parcel is delivered. The transition is one-way:
// pending -> cashed_out, never back.
type CashoutStatus int

const (
	// CashoutStatusUnknown catches uninitialized values; it never persists.
	CashoutStatusUnknown CashoutStatus = iota

	// CashoutPending means the rider's share has not been paid out yet.
	CashoutPending

	// CashedOut means the rider's share has been settled.
	CashedOut
)

func cashoutStatusStrings() map[CashoutStatus]string {
	return map[CashoutStatus]string{
		CashoutStatusUnknown: "unknown",
		CashoutPending:       "pending",
		CashedOut:            "cashed_out",
	}
}

// Validate rejects CashoutStatusUnknown and any out-of-range value.
func (s CashoutStatus) Validate() error {
	if s != CashoutPending && s != CashedOut {
		return errs.NewValueIsInvalidErrorWithCause(
			"cashout status",
			fmt.Errorf("%d is not a valid cashout status", s),
		)
	}
	return nil
}

// String returns the wire-format name of the status.
func (s CashoutStatus) String() string {
	if str, ok := cashoutStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
