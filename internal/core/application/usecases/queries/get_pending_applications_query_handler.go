package queries

import (
	"context"

	"zapship/internal/core/domain/model/rider"

	"gorm.io/gorm"
)

// GetPendingApplicationsQueryHandler retrieves the admin review backlog.
type GetPendingApplicationsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingApplicationsQueryHandler creates a handler for the review
// backlog query.
func NewGetPendingApplicationsQueryHandler(db *gorm.DB) GetPendingApplicationsQueryHandler {
	return GetPendingApplicationsQueryHandler{db: db}
}

// Handle executes the backlog query, most recent applications first.
func (h GetPendingApplicationsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingApplicationsQuery,
) ([]RiderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	applications := make([]RiderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+riderColumns+`
		FROM rider_applications
		WHERE application_status = ?
		ORDER BY applied_at DESC
	`, rider.ApplicationPending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanRider(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		applications = append(applications, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}
