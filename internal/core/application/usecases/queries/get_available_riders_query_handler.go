package queries

import (
	"context"
	"database/sql"

	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/core/domain/model/rider"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const riderColumns = `
	id,
	name,
	email,
	phone,
	district,
	region,
	application_status,
	work_status,
	applied_at
`

// GetAvailableRidersQueryHandler finds free riders for a district: approved
// or active applications whose work status is not in_delivery.
type GetAvailableRidersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableRidersQueryHandler creates a handler for rider matching.
func NewGetAvailableRidersQueryHandler(db *gorm.DB) GetAvailableRidersQueryHandler {
	return GetAvailableRidersQueryHandler{db: db}
}

// Handle executes the matching query.
func (h GetAvailableRidersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableRidersQuery,
) ([]RiderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	riders := make([]RiderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+riderColumns+`
		FROM rider_applications
		WHERE district = ?
		  AND application_status IN (?, ?)
		  AND work_status != ?
		ORDER BY name
	`, query.District(), rider.ApplicationApproved, rider.ApplicationActive, rider.WorkInDelivery).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanRider(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		riders = append(riders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return riders, nil
}

func scanRider(rows *sql.Rows) (RiderResponse, error) {
	var resp RiderResponse
	var id uuid.UUID
	var applicationStatus, workStatus int

	err := rows.Scan(
		&id,
		&resp.Name,
		&resp.Email,
		&resp.Phone,
		&resp.District,
		&resp.Region,
		&applicationStatus,
		&workStatus,
		&resp.AppliedAt,
	)
	if err != nil {
		return RiderResponse{}, err
	}

	riderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return RiderResponse{}, err
	}

	resp.ID = riderID
	resp.ApplicationStatus = rider.ApplicationStatus(applicationStatus).String()
	resp.WorkStatus = rider.WorkStatus(workStatus).String()
	return resp, nil
}
