package queries

import (
	"context"

	"zapship/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GetAssignableParcelsQueryHandler retrieves the dispatch worklist: parcels
// whose fee is paid and which nobody has collected yet.
type GetAssignableParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignableParcelsQueryHandler creates a handler for the dispatch
// worklist query.
func NewGetAssignableParcelsQueryHandler(db *gorm.DB) GetAssignableParcelsQueryHandler {
	return GetAssignableParcelsQueryHandler{db: db}
}

// Handle executes the worklist query, oldest parcels first so dispatchers
// clear the backlog in arrival order.
func (h GetAssignableParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetAssignableParcelsQuery,
) ([]ParcelSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]ParcelSummaryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+parcelSummaryColumns+`
		FROM parcels
		WHERE payment_status = ?
		  AND delivery_status = ?
		ORDER BY created_at
	`, parcel.Paid, parcel.NotCollected).Rows()
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
