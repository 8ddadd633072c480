package ports

import (
	"context"

	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment ledger
// entries. Entries are append-only; settlement never mutates them.
type PaymentRepository interface {
	// Add persists a new payment ledger entry.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// GetByParcelID retrieves the payment recorded for a parcel, if any.
	GetByParcelID(ctx context.Context, parcelID kernel.UUID) (*payment.Payment, error)
}
