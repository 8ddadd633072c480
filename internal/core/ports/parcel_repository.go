package ports

import (
	"context"

	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
// Provides methods for storing, retrieving, and updating parcels across
// their delivery lifecycle.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// The parcel must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	// Lifecycle timestamps that were already stamped in storage are
	// preserved, so replays of a transition never move a stamp.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	// Returns the complete parcel with its current statuses and
	// rider assignment.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)
}
