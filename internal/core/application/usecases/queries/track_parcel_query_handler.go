package queries

import (
	"context"

	"zapship/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackParcelQueryHandler resolves a tracking code to the parcel's current
// state. Tracking codes are handed to receivers, so this is the one parcel
// read that is not scoped to the caller.
type TrackParcelQueryHandler struct {
	db *gorm.DB
}

// NewTrackParcelQueryHandler creates a handler for tracking lookups.
func NewTrackParcelQueryHandler(db *gorm.DB) TrackParcelQueryHandler {
	return TrackParcelQueryHandler{db: db}
}

// Handle executes the lookup.
func (h TrackParcelQueryHandler) Handle(
	ctx context.Context,
	query TrackParcelQuery,
) (ParcelSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return ParcelSummaryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+parcelSummaryColumns+`
		FROM parcels
		WHERE tracking_id = ?
	`, query.TrackingID()).Rows()
	if err != nil {
		return ParcelSummaryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ParcelSummaryResponse{}, err
		}
		return ParcelSummaryResponse{}, errs.NewObjectNotFoundError("parcel", query.TrackingID())
	}

	resp, err := scanParcelSummary(rows)
	if err != nil {
		return ParcelSummaryResponse{}, err
	}

	return resp, rows.Err()
}
