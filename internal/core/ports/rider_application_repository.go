package ports

import (
	"context"

	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/core/domain/model/rider"
)

// RiderApplicationRepository defines the persistence contract for rider
// applications, from submission through review to the active rider pool.
type RiderApplicationRepository interface {
	// Add persists a newly submitted application.
	Add(ctx context.Context, aggregate *rider.RiderApplication) error

	// Update persists review decisions and work status changes.
	Update(ctx context.Context, aggregate *rider.RiderApplication) error

	// Get retrieves an application by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*rider.RiderApplication, error)

	// GetByEmail retrieves the application submitted by the given email.
	GetByEmail(ctx context.Context, email string) (*rider.RiderApplication, error)
}
