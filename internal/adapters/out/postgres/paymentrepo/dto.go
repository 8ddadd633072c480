// Package paymentrepo persists payment ledger entries. The ledger is
// append-only; the repository deliberately exposes no update or delete.
package paymentrepo

import (
	"time"

	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for ledger entries.
type PaymentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID       uuid.UUID `gorm:"type:uuid;index"`
	Amount         float64
	TransactionID  string
	PaymentMethod  string
	CreatedByEmail string `gorm:"index"`
	PaidAt         time.Time
}

// TableName specifies the database table name for ledger entries.
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:             aggregate.ID().Bytes(),
		ParcelID:       aggregate.ParcelID().Bytes(),
		Amount:         aggregate.Amount(),
		TransactionID:  aggregate.TransactionID(),
		PaymentMethod:  aggregate.PaymentMethod(),
		CreatedByEmail: aggregate.CreatedByEmail(),
		PaidAt:         aggregate.PaidAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id,
		parcelID,
		dto.Amount,
		dto.TransactionID,
		dto.PaymentMethod,
		dto.CreatedByEmail,
		dto.PaidAt,
	)
}
