package commands

import (
	"context"
	"errors"
	"time"

	"zapship/internal/core/domain/model/account"
	"zapship/internal/pkg/errs"
)

// ApproveRiderApplicationCommandHandler applies review decisions to rider
// applications. When the merged application becomes active, the applicant's
// user record is upserted with the rider role in the same transaction, so
// the application status and the user's capabilities never diverge.
type ApproveRiderApplicationCommandHandler struct {
	uowFactory OnboardingUoWFactory
}

// NewApproveRiderApplicationCommandHandler creates a handler for application
// review.
func NewApproveRiderApplicationCommandHandler(uowFactory OnboardingUoWFactory) ApproveRiderApplicationCommandHandler {
	return ApproveRiderApplicationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review command. Re-running a decision is safe: the
// merge and the user upsert are both idempotent.
func (h ApproveRiderApplicationCommandHandler) Handle(ctx context.Context, cmd ApproveRiderApplicationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Caller().RequireAdmin("approve rider application"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	appRepo := uow.RiderApplicationRepository()

	application, err := appRepo.Get(ctx, cmd.ApplicationID())
	if err != nil {
		return err
	}

	if status := cmd.ApplicationStatus(); status != nil {
		if err = application.ChangeApplicationStatus(*status); err != nil {
			return err
		}
	}
	if status := cmd.WorkStatus(); status != nil {
		if err = application.ChangeWorkStatus(*status); err != nil {
			return err
		}
	}

	if err = appRepo.Update(ctx, application); err != nil {
		return err
	}

	if application.IsActive() {
		if err = h.promoteApplicant(ctx, uow, application.Email()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// promoteApplicant grants the rider role to the applicant's user record,
// creating the record when the applicant never logged in.
func (h ApproveRiderApplicationCommandHandler) promoteApplicant(
	ctx context.Context,
	uow OnboardingUoW,
	email string,
) error {
	userRepo := uow.UserRepository()

	user, err := userRepo.GetByEmail(ctx, email)
	if errors.Is(err, errs.ErrObjectNotFound) {
		user, err = account.NewUser(email, time.Now().UTC())
	}
	if err != nil {
		return err
	}

	if err = user.ChangeRole(account.RoleRider); err != nil {
		return err
	}

	return userRepo.Upsert(ctx, user)
}
