package commands

import (
	"errors"

	"zapship/internal/core/domain/model/account"
	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/core/domain/model/parcel"
	"zapship/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand moves a parcel to a new delivery status.
// The status comes from the closed vocabulary; transport parses wire
// strings (including the "in-transit" alias) before building the command.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	caller    account.Caller
	parcelID  kernel.UUID
	newStatus parcel.DeliveryStatus

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command to change a parcel's
// delivery status. Validates the parcel ID and that the status is a member
// of the vocabulary.
func NewUpdateDeliveryStatusCommand(
	caller account.Caller,
	parcelID kernel.UUID,
	newStatus parcel.DeliveryStatus,
) (UpdateDeliveryStatusCommand, error) {
	if err := errors.Join(parcelID.Validate(), newStatus.Validate()); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return UpdateDeliveryStatusCommand{
		caller:    caller,
		parcelID:  parcelID,
		newStatus: newStatus,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// Caller returns the capability of the invoking identity.
func (c UpdateDeliveryStatusCommand) Caller() account.Caller {
	return c.caller
}

// ParcelID returns the parcel to move.
func (c UpdateDeliveryStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// NewStatus returns the target delivery status.
func (c UpdateDeliveryStatusCommand) NewStatus() parcel.DeliveryStatus {
	return c.newStatus
}
