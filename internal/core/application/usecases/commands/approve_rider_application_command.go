package commands

import (
	"errors"

	"zapship/internal/core/domain/model/account"
	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/core/domain/model/rider"
	"zapship/internal/pkg/errs"
	"zapship/internal/pkg/guard"
)

var (
	ErrApproveRiderApplicationCommandIsNotConstructed = errors.New(
		"ApproveRiderApplicationCommand must be created via NewApproveRiderApplicationCommand constructor",
	)
	ErrNoReviewFieldsProvided = errs.NewValueIsRequiredError("application status or work status")
)

// ApproveRiderApplicationCommand applies an admin review decision to a rider
// application. Either field may be omitted; provided fields are merged onto
// the stored application. Moving the application to active promotes the
// applicant's user record to the rider role.
type ApproveRiderApplicationCommand struct { //nolint:recvcheck //using for validation
	caller            account.Caller
	applicationID     kernel.UUID
	applicationStatus *rider.ApplicationStatus
	workStatus        *rider.WorkStatus

	guard guard.ConstructorGuard
}

// NewApproveRiderApplicationCommand creates a review command. At least one
// of applicationStatus / workStatus must be provided, and any provided
// status must be a member of its vocabulary.
func NewApproveRiderApplicationCommand(
	caller account.Caller,
	applicationID kernel.UUID,
	applicationStatus *rider.ApplicationStatus,
	workStatus *rider.WorkStatus,
) (ApproveRiderApplicationCommand, error) {
	if err := applicationID.Validate(); err != nil {
		return ApproveRiderApplicationCommand{}, err
	}

	if applicationStatus == nil && workStatus == nil {
		return ApproveRiderApplicationCommand{}, ErrNoReviewFieldsProvided
	}

	if applicationStatus != nil {
		if err := applicationStatus.Validate(); err != nil {
			return ApproveRiderApplicationCommand{}, err
		}
	}
	if workStatus != nil {
		if err := workStatus.Validate(); err != nil {
			return ApproveRiderApplicationCommand{}, err
		}
	}

	return ApproveRiderApplicationCommand{
		caller:            caller,
		applicationID:     applicationID,
		applicationStatus: applicationStatus,
		workStatus:        workStatus,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveRiderApplicationCommand) Validate() error {
	return c.guard.Validate(ErrApproveRiderApplicationCommandIsNotConstructed)
}

// Caller returns the capability of the invoking identity.
func (c ApproveRiderApplicationCommand) Caller() account.Caller {
	return c.caller
}

// ApplicationID returns the application under review.
func (c ApproveRiderApplicationCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

// ApplicationStatus returns the review decision, or nil when unchanged.
func (c ApproveRiderApplicationCommand) ApplicationStatus() *rider.ApplicationStatus {
	return c.applicationStatus
}

// WorkStatus returns the dispatch availability to set, or nil when unchanged.
func (c ApproveRiderApplicationCommand) WorkStatus() *rider.WorkStatus {
	return c.workStatus
}
