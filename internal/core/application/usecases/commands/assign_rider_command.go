package commands

import (
	"errors"

	"zapship/internal/core/domain/model/account"
	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/core/domain/model/parcel"
	"zapship/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand records a rider on a parcel and moves it to the
// rider_assigned status. Dispatchers may re-run it to swap riders on a
// parcel that is already assigned or in motion.
//
// Example:
//
//	cmd, err := NewAssignRiderCommand(admin, parcelID, riderID, "Rahim", "rahim@example.com")
//	if err != nil {
//	    return fmt.Errorf("invalid assignment: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("assignment failed: %w", err)
//	}
type AssignRiderCommand struct { //nolint:recvcheck //using for validation
	caller     account.Caller
	parcelID   kernel.UUID
	assignment parcel.RiderAssignment

	guard guard.ConstructorGuard
}

// NewAssignRiderCommand creates a command to put a rider on a parcel.
// Validates the parcel ID and the full rider trio (ID, name, email).
func NewAssignRiderCommand(
	caller account.Caller,
	parcelID kernel.UUID,
	riderID kernel.UUID,
	riderName string,
	riderEmail string,
) (AssignRiderCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return AssignRiderCommand{}, err
	}

	assignment, err := parcel.NewRiderAssignment(riderID, riderName, riderEmail)
	if err != nil {
		return AssignRiderCommand{}, err
	}

	return AssignRiderCommand{
		caller:     caller,
		parcelID:   parcelID,
		assignment: assignment,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

// Caller returns the capability of the invoking identity.
func (c AssignRiderCommand) Caller() account.Caller {
	return c.caller
}

// ParcelID returns the parcel to assign.
func (c AssignRiderCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Assignment returns the rider identity to record on the parcel.
func (c AssignRiderCommand) Assignment() parcel.RiderAssignment {
	return c.assignment
}
