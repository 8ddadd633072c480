package queries

import (
	"database/sql"

	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// parcelSummaryColumns is the projection shared by the parcel listing
// queries; scanParcelSummary scans one row of it.
const parcelSummaryColumns = `
	id,
	tracking_id,
	title,
	sender_region,
	receiver_region,
	sender_center,
	delivery_cost,
	payment_status,
	delivery_status,
	cashout_status,
	rider_name,
	rider_email,
	created_at,
	delivered_at
`

func scanParcelSummary(rows *sql.Rows) (ParcelSummaryResponse, error) {
	var resp ParcelSummaryResponse
	var id uuid.UUID
	var paymentStatus, deliveryStatus, cashoutStatus int

	err := rows.Scan(
		&id,
		&resp.TrackingID,
		&resp.Title,
		&resp.SenderRegion,
		&resp.ReceiverRegion,
		&resp.SenderCenter,
		&resp.DeliveryCost,
		&paymentStatus,
		&deliveryStatus,
		&cashoutStatus,
		&resp.RiderName,
		&resp.RiderEmail,
		&resp.CreatedAt,
		&resp.DeliveredAt,
	)
	if err != nil {
		return ParcelSummaryResponse{}, err
	}

	parcelID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ParcelSummaryResponse{}, err
	}

	resp.ID = parcelID
	resp.PaymentStatus = parcel.PaymentStatus(paymentStatus).String()
	resp.DeliveryStatus = parcel.DeliveryStatus(deliveryStatus).String()
	resp.CashoutStatus = parcel.CashoutStatus(cashoutStatus).String()
	return resp, nil
}
