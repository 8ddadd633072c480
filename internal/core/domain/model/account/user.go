// Package account contains the user registry model: user records keyed by
// email with a role, and the Caller capability the transport layer hands to
// use cases after authenticating a request.
package account

import (
	"errors"
	"time"

	"zapship/internal/pkg/errs"
	"zapship/internal/pkg/guard"
)

// Domain errors for user records.
var (
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")
	ErrEmailIsRequired      = errs.NewValueIsRequiredError("email")
)

// User is a registered account, keyed by email. Users are created on first
// login and promoted to rider when their application becomes active.
type User struct {
	email       string
	role        Role
	createdAt   time.Time
	lastLoginAt time.Time

	guard guard.ConstructorGuard
}

// NewUser creates a user with the default role.
func NewUser(email string, createdAt time.Time) (*User, error) {
	return RestoreUser(email, RoleUser, createdAt, createdAt)
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(email string, role Role, createdAt, lastLoginAt time.Time) (*User, error) {
	if email == "" {
		return nil, ErrEmailIsRequired
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	return &User{
		email:       email,
		role:        role,
		createdAt:   createdAt,
		lastLoginAt: lastLoginAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the user was created through a constructor.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// Email returns the account email.
func (u *User) Email() string { return u.email }

// Role returns the account role.
func (u *User) Role() Role { return u.role }

// CreatedAt returns when the account was first registered.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// LastLoginAt returns the most recent login time.
func (u *User) LastLoginAt() time.Time { return u.lastLoginAt }

// ChangeRole updates the account role.
func (u *User) ChangeRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

// RecordLogin refreshes the last-login stamp.
func (u *User) RecordLogin(at time.Time) {
	u.lastLoginAt = at
}
