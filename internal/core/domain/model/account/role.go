package account

import (
	"fmt"
	"strings"

	"zapship/internal/pkg/errs"
)

// Role is the authorization level attached to a user record.
type Role int

const (
	// RoleUnknown catches uninitialized values; it never persists.
	RoleUnknown Role = iota

	// RoleUser is the default role for every registered account.
	RoleUser

	// RoleRider is granted when a rider application becomes active.
	RoleRider

	// RoleAdmin may assign riders, approve applications and settle cash-outs.
	RoleAdmin
)

func roleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "unknown",
		RoleUser:    "user",
		RoleRider:   "rider",
		RoleAdmin:   "admin",
	}
}

// ParseRole converts a wire-format role into the enum.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(s) {
	case "user":
		return RoleUser, nil
	case "rider":
		return RoleRider, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%q is not a known role", s),
		)
	}
}

// Validate rejects RoleUnknown and any out-of-range value.
func (r Role) Validate() error {
	if r < RoleUser || r > RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the wire-format name of the role.
func (r Role) String() string {
	if str, ok := roleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
