package ports

import (
	"context"

	"zapship/internal/core/domain/model/account"
)

// UserRepository defines the persistence contract for the user registry.
// Users are keyed by email rather than a surrogate identifier.
type UserRepository interface {
	// Upsert inserts the user or, when the email already exists, refreshes
	// its role and last-login stamp. Registration is replay-safe.
	Upsert(ctx context.Context, aggregate *account.User) error

	// GetByEmail retrieves a user record by email.
	GetByEmail(ctx context.Context, email string) (*account.User, error)
}
