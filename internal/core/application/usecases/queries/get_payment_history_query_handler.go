package queries

import (
	"context"

	"zapship/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPaymentHistoryQueryHandler retrieves a payer's ledger entries.
type GetPaymentHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentHistoryQueryHandler creates a handler for payment history.
func NewGetPaymentHistoryQueryHandler(db *gorm.DB) GetPaymentHistoryQueryHandler {
	return GetPaymentHistoryQueryHandler{db: db}
}

// Handle executes the history query, latest payments first.
func (h GetPaymentHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentHistoryQuery,
) ([]PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	payments := make([]PaymentResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			parcel_id,
			amount,
			transaction_id,
			payment_method,
			paid_at
		FROM payments
		WHERE created_by_email = ?
		ORDER BY paid_at DESC
	`, query.PayerEmail()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp PaymentResponse
		var id, parcelID uuid.UUID

		err = rows.Scan(
			&id,
			&parcelID,
			&resp.Amount,
			&resp.TransactionID,
			&resp.PaymentMethod,
			&resp.PaidAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ParcelID, err = kernel.UUIDFromBytes(parcelID[:]); err != nil {
			return nil, err
		}

		payments = append(payments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
