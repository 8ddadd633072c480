package commands

import (
	"errors"

	"zapship/internal/core/domain/model/account"
	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/pkg/guard"
)

var ErrCashOutParcelCommandIsNotConstructed = errors.New(
	"CashOutParcelCommand must be created via NewCashOutParcelCommand constructor",
)

// CashOutParcelCommand settles the rider's earning for a delivered parcel.
// Repeating the command is a safe no-op that keeps the original settlement
// stamp; cashing out an undelivered parcel is rejected.
type CashOutParcelCommand struct { //nolint:recvcheck //using for validation
	caller   account.Caller
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCashOutParcelCommand creates a command to settle a parcel's earning.
func NewCashOutParcelCommand(caller account.Caller, parcelID kernel.UUID) (CashOutParcelCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return CashOutParcelCommand{}, err
	}

	return CashOutParcelCommand{
		caller:   caller,
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CashOutParcelCommand) Validate() error {
	return c.guard.Validate(ErrCashOutParcelCommandIsNotConstructed)
}

// Caller returns the capability of the invoking identity.
func (c CashOutParcelCommand) Caller() account.Caller {
	return c.caller
}

// ParcelID returns the parcel to settle.
func (c CashOutParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}
