package commands

import (
	"errors"

	"zapship/internal/pkg/errs"
	"zapship/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand records a login: creates the user record on first
// sight, refreshes the last-login stamp on every later one. The role is
// never touched here, so a rider or admin logging in keeps their role.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	email string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to record a user login.
func NewRegisterUserCommand(email string) (RegisterUserCommand, error) {
	if email == "" {
		return RegisterUserCommand{}, errs.NewValueIsRequiredError("email")
	}

	return RegisterUserCommand{
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Email returns the logging-in email.
func (c RegisterUserCommand) Email() string {
	return c.email
}
