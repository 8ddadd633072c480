package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetParcelsByCreatorQueryHandler lists a sender's parcels straight from
// the database, newest first.
type GetParcelsByCreatorQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelsByCreatorQueryHandler creates a handler for sender parcel
// listings.
func NewGetParcelsByCreatorQueryHandler(db *gorm.DB) GetParcelsByCreatorQueryHandler {
	return GetParcelsByCreatorQueryHandler{db: db}
}

// Handle executes the listing query.
func (h GetParcelsByCreatorQueryHandler) Handle(
	ctx context.Context,
	query GetParcelsByCreatorQuery,
) ([]ParcelSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]ParcelSummaryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+parcelSummaryColumns+`
		FROM parcels
		WHERE created_by_email = ?
		ORDER BY created_at DESC
	`, query.CreatorEmail()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanParcelSummary(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		parcels = append(parcels, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
