package queries

import (
	"errors"
	"time"

	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/pkg/errs"
	"zapship/internal/pkg/guard"
)

var ErrGetParcelsByCreatorQueryIsNotConstructed = errors.New(
	"GetParcelsByCreatorQuery must be created via NewGetParcelsByCreatorQuery constructor",
)

// GetParcelsByCreatorQuery lists a sender's parcels, newest first.
type GetParcelsByCreatorQuery struct {
	creatorEmail string

	guard guard.ConstructorGuard
}

// NewGetParcelsByCreatorQuery creates a query for one sender's parcels.
func NewGetParcelsByCreatorQuery(creatorEmail string) (GetParcelsByCreatorQuery, error) {
	if creatorEmail == "" {
		return GetParcelsByCreatorQuery{}, errs.NewValueIsRequiredError("creator email")
	}

	return GetParcelsByCreatorQuery{
		creatorEmail: creatorEmail,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelsByCreatorQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelsByCreatorQueryIsNotConstructed)
}

// CreatorEmail returns the sender whose parcels are listed.
func (q GetParcelsByCreatorQuery) CreatorEmail() string {
	return q.creatorEmail
}

// ParcelSummaryResponse is the read model for parcel listings.
type ParcelSummaryResponse struct {
	ID             kernel.UUID
	TrackingID     string
	Title          string
	SenderRegion   string
	ReceiverRegion string
	SenderCenter   string
	DeliveryCost   *float64
	PaymentStatus  string
	DeliveryStatus string
	CashoutStatus  string
	RiderName      *string
	RiderEmail     *string
	CreatedAt      time.Time
	DeliveredAt    *time.Time
}
