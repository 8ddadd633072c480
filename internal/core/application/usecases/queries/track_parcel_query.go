package queries

import (
	"errors"

	"zapship/internal/pkg/errs"
	"zapship/internal/pkg/guard"
)

var ErrTrackParcelQueryIsNotConstructed = errors.New(
	"TrackParcelQuery must be created via NewTrackParcelQuery constructor",
)

// TrackParcelQuery looks up one parcel by its public tracking code.
type TrackParcelQuery struct {
	trackingID string

	guard guard.ConstructorGuard
}

// NewTrackParcelQuery creates a query for a single tracking code.
func NewTrackParcelQuery(trackingID string) (TrackParcelQuery, error) {
	if trackingID == "" {
		return TrackParcelQuery{}, errs.NewValueIsRequiredError("tracking id")
	}

	return TrackParcelQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackParcelQuery) Validate() error {
	return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
}

// TrackingID returns the tracking code being looked up.
func (q TrackParcelQuery) TrackingID() string {
	return q.trackingID
}
