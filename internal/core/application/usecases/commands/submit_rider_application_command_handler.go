package commands

import (
	"context"
	"time"

	"zapship/internal/core/domain/model/rider"
)

// SubmitRiderApplicationCommandHandler files new rider applications in the
// pending state.
type SubmitRiderApplicationCommandHandler struct {
	uowFactory ApplicationUoWFactory
}

// NewSubmitRiderApplicationCommandHandler creates a handler for application
// submission.
func NewSubmitRiderApplicationCommandHandler(uowFactory ApplicationUoWFactory) SubmitRiderApplicationCommandHandler {
	return SubmitRiderApplicationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the submission command.
func (h *SubmitRiderApplicationCommandHandler) Handle(ctx context.Context, cmd SubmitRiderApplicationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	application, err := rider.NewRiderApplication(
		cmd.ApplicationID(),
		cmd.Name(),
		cmd.Email(),
		cmd.Phone(),
		cmd.District(),
		cmd.Region(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RiderApplicationRepository().Add(ctx, application); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
