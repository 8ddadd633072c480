package queries

import (
	"context"

	"zapship/internal/core/domain/model/parcel"
	"zapship/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetPendingCashoutTotalsQueryHandler aggregates outstanding rider
// settlements. The region split is applied in SQL with the same shares the
// domain calculator uses.
type GetPendingCashoutTotalsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingCashoutTotalsQueryHandler creates a handler for the pending
// settlement summary.
func NewGetPendingCashoutTotalsQueryHandler(db *gorm.DB) GetPendingCashoutTotalsQueryHandler {
	return GetPendingCashoutTotalsQueryHandler{db: db}
}

// Handle executes the summary query, largest balances first.
func (h GetPendingCashoutTotalsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingCashoutTotalsQuery,
) ([]PendingCashoutResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	totals := make([]PendingCashoutResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			rider_email,
			COUNT(*),
			SUM(COALESCE(delivery_cost, 0) * CASE
				WHEN sender_region = receiver_region THEN ?
				ELSE ?
			END)
		FROM parcels
		WHERE delivery_status = ?
		  AND cashout_status = ?
		  AND rider_email IS NOT NULL
		GROUP BY rider_email
		ORDER BY 3 DESC
	`, services.IntraRegionShare, services.InterRegionShare,
		parcel.Delivered, parcel.CashoutPending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp PendingCashoutResponse

		err = rows.Scan(&resp.RiderEmail, &resp.ParcelCount, &resp.PendingEarning)
		if err != nil {
			return nil, err
		}

		totals = append(totals, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return totals, nil
}
