package commands

import (
	"context"
	"errors"
	"time"

	"zapship/internal/core/domain/model/account"
	"zapship/internal/pkg/errs"
)

// RegisterUserCommandHandler maintains the user registry on login. The
// operation is replay-safe: a known email only refreshes last_login_at.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for login registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the login command.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	now := time.Now().UTC()

	user, err := userRepo.GetByEmail(ctx, cmd.Email())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		if user, err = account.NewUser(cmd.Email(), now); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		user.RecordLogin(now)
	}

	if err = userRepo.Upsert(ctx, user); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
