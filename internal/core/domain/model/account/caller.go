package account

import "zapship/internal/pkg/errs"

// Caller is the typed capability describing who invokes a use case. The
// transport layer verifies the request's identity token, resolves the role,
// and constructs a Caller; the core never re-checks raw role strings.
type Caller struct {
	email string
	role  Role
}

// NewCaller creates a capability for an authenticated identity.
func NewCaller(email string, role Role) (Caller, error) {
	if email == "" {
		return Caller{}, ErrEmailIsRequired
	}
	if err := role.Validate(); err != nil {
		return Caller{}, err
	}
	return Caller{email: email, role: role}, nil
}

// Email returns the authenticated email.
func (c Caller) Email() string { return c.email }

// Role returns the caller's role.
func (c Caller) Role() Role { return c.role }

// RequireAdmin returns a Forbidden error unless the caller is an admin.
func (c Caller) RequireAdmin(operation string) error {
	if c.role != RoleAdmin {
		return errs.NewForbiddenError(operation, c.role.String())
	}
	return nil
}

// RequireRider returns a Forbidden error unless the caller is a rider or an
// admin (admins may drive any rider-facing operation for support purposes).
func (c Caller) RequireRider(operation string) error {
	if c.role != RoleRider && c.role != RoleAdmin {
		return errs.NewForbiddenError(operation, c.role.String())
	}
	return nil
}
