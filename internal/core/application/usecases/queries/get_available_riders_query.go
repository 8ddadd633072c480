package queries

import (
	"errors"
	"time"

	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/pkg/errs"
	"zapship/internal/pkg/guard"
)

var ErrGetAvailableRidersQueryIsNotConstructed = errors.New(
	"GetAvailableRidersQuery must be created via NewGetAvailableRidersQuery constructor",
)

// GetAvailableRidersQuery lists onboarded riders serving a district who are
// not currently out on a delivery. Dispatchers use it to pick a rider for
// an assignable parcel.
type GetAvailableRidersQuery struct {
	district string

	guard guard.ConstructorGuard
}

// NewGetAvailableRidersQuery creates a query for a district's free riders.
func NewGetAvailableRidersQuery(district string) (GetAvailableRidersQuery, error) {
	if district == "" {
		return GetAvailableRidersQuery{}, errs.NewValueIsRequiredError("district")
	}

	return GetAvailableRidersQuery{
		district: district,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableRidersQueryIsNotConstructed)
}

// District returns the district to match riders against.
func (q GetAvailableRidersQuery) District() string {
	return q.district
}

// RiderResponse is the read model for rider listings.
type RiderResponse struct {
	ID                kernel.UUID
	Name              string
	Email             string
	Phone             string
	District          string
	Region            string
	ApplicationStatus string
	WorkStatus        string
	AppliedAt         time.Time
}
