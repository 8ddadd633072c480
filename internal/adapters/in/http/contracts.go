package http

import (
	"time"

	"zapship/internal/core/application/usecases/queries"
	"zapship/internal/core/domain/services"
)

// Error is the wire-format error body returned by every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateParcelRequest is the body for POST /api/v1/parcels.
type CreateParcelRequest struct {
	TrackingID     string   `json:"tracking_id"`
	Title          string   `json:"title"`
	SenderRegion   string   `json:"sender_region"`
	ReceiverRegion string   `json:"receiver_region"`
	SenderCenter   string   `json:"sender_center"`
	DeliveryCost   *float64 `json:"delivery_cost,omitempty"`
}

// CreateParcelResponse returns the identifiers of the registered parcel.
type CreateParcelResponse struct {
	ID         string `json:"id"`
	TrackingID string `json:"tracking_id"`
}

// AssignRiderRequest is the body for POST /api/v1/parcels/:id/rider.
type AssignRiderRequest struct {
	RiderID    string `json:"rider_id"`
	RiderName  string `json:"rider_name"`
	RiderEmail string `json:"rider_email"`
}

// UpdateDeliveryStatusRequest is the body for PATCH /api/v1/parcels/:id/status.
type UpdateDeliveryStatusRequest struct {
	Status string `json:"status"`
}

// RecordPaymentRequest is the body for POST /api/v1/payments.
type RecordPaymentRequest struct {
	ParcelID      string  `json:"parcel_id"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transaction_id"`
	PaymentMethod string  `json:"payment_method"`
}

// SubmitRiderApplicationRequest is the body for POST /api/v1/riders.
type SubmitRiderApplicationRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	District string `json:"district"`
	Region   string `json:"region"`
}

// SubmitRiderApplicationResponse returns the identifier of the filed application.
type SubmitRiderApplicationResponse struct {
	ID string `json:"id"`
}

// ReviewRiderApplicationRequest is the body for PATCH /api/v1/riders/:id.
// Both fields are optional but at least one must be present.
type ReviewRiderApplicationRequest struct {
	ApplicationStatus *string `json:"application_status,omitempty"`
	WorkStatus        *string `json:"work_status,omitempty"`
}

// Parcel is the wire representation of a parcel summary row.
type Parcel struct {
	ID             string     `json:"id"`
	TrackingID     string     `json:"tracking_id"`
	Title          string     `json:"title"`
	SenderRegion   string     `json:"sender_region"`
	ReceiverRegion string     `json:"receiver_region"`
	SenderCenter   string     `json:"sender_center"`
	DeliveryCost   *float64   `json:"delivery_cost,omitempty"`
	PaymentStatus  string     `json:"payment_status"`
	DeliveryStatus string     `json:"delivery_status"`
	CashoutStatus  string     `json:"cashout_status"`
	RiderName      *string    `json:"rider_name,omitempty"`
	RiderEmail     *string    `json:"rider_email,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`
}

// Rider is the wire representation of a rider application row.
type Rider struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone,omitempty"`
	District          string    `json:"district"`
	Region            string    `json:"region"`
	ApplicationStatus string    `json:"application_status"`
	WorkStatus        string    `json:"work_status"`
	AppliedAt         time.Time `json:"applied_at"`
}

// Payment is the wire representation of a payment ledger row.
type Payment struct {
	ID            string    `json:"id"`
	ParcelID      string    `json:"parcel_id"`
	Amount        float64   `json:"amount"`
	TransactionID string    `json:"transaction_id"`
	PaymentMethod string    `json:"payment_method"`
	PaidAt        time.Time `json:"paid_at"`
}

// PendingCashout is one rider's pending settlement aggregate.
type PendingCashout struct {
	RiderEmail     string  `json:"rider_email"`
	ParcelCount    int     `json:"parcel_count"`
	PendingEarning float64 `json:"pending_earning"`
}

// EarningsReport re-exports the rendered earnings buckets; the domain type
// already carries the wire tags.
type EarningsReport = services.EarningsReport

func toParcel(row queries.ParcelSummaryResponse) Parcel {
	return Parcel{
		ID:             row.ID.String(),
		TrackingID:     row.TrackingID,
		Title:          row.Title,
		SenderRegion:   row.SenderRegion,
		ReceiverRegion: row.ReceiverRegion,
		SenderCenter:   row.SenderCenter,
		DeliveryCost:   row.DeliveryCost,
		PaymentStatus:  row.PaymentStatus,
		DeliveryStatus: row.DeliveryStatus,
		CashoutStatus:  row.CashoutStatus,
		RiderName:      row.RiderName,
		RiderEmail:     row.RiderEmail,
		CreatedAt:      row.CreatedAt,
		DeliveredAt:    row.DeliveredAt,
	}
}

func toParcels(rows []queries.ParcelSummaryResponse) []Parcel {
	out := make([]Parcel, len(rows))
	for i, row := range rows {
		out[i] = toParcel(row)
	}
	return out
}

func toRiders(rows []queries.RiderResponse) []Rider {
	out := make([]Rider, len(rows))
	for i, row := range rows {
		out[i] = Rider{
			ID:                row.ID.String(),
			Name:              row.Name,
			Email:             row.Email,
			Phone:             row.Phone,
			District:          row.District,
			Region:            row.Region,
			ApplicationStatus: row.ApplicationStatus,
			WorkStatus:        row.WorkStatus,
			AppliedAt:         row.AppliedAt,
		}
	}
	return out
}

func toPayments(rows []queries.PaymentResponse) []Payment {
	out := make([]Payment, len(rows))
	for i, row := range rows {
		out[i] = Payment{
			ID:            row.ID.String(),
			ParcelID:      row.ParcelID.String(),
			Amount:        row.Amount,
			TransactionID: row.TransactionID,
			PaymentMethod: row.PaymentMethod,
			PaidAt:        row.PaidAt,
		}
	}
	return out
}

func toPendingCashouts(rows []queries.PendingCashoutResponse) []PendingCashout {
	out := make([]PendingCashout, len(rows))
	for i, row := range rows {
		out[i] = PendingCashout{
			RiderEmail:     row.RiderEmail,
			ParcelCount:    row.ParcelCount,
			PendingEarning: row.PendingEarning,
		}
	}
	return out
}
