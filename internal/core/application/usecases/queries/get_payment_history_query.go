package queries

import (
	"errors"
	"time"

	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/pkg/errs"
	"zapship/internal/pkg/guard"
)

var ErrGetPaymentHistoryQueryIsNotConstructed = errors.New(
	"GetPaymentHistoryQuery must be created via NewGetPaymentHistoryQuery constructor",
)

// GetPaymentHistoryQuery lists a payer's ledger entries, latest first.
type GetPaymentHistoryQuery struct {
	payerEmail string

	guard guard.ConstructorGuard
}

// NewGetPaymentHistoryQuery creates a query for one payer's history.
func NewGetPaymentHistoryQuery(payerEmail string) (GetPaymentHistoryQuery, error) {
	if payerEmail == "" {
		return GetPaymentHistoryQuery{}, errs.NewValueIsRequiredError("payer email")
	}

	return GetPaymentHistoryQuery{
		payerEmail: payerEmail,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentHistoryQueryIsNotConstructed)
}

// PayerEmail returns the payer whose history is listed.
func (q GetPaymentHistoryQuery) PayerEmail() string {
	return q.payerEmail
}

// PaymentResponse is the read model for ledger entries.
type PaymentResponse struct {
	ID            kernel.UUID
	ParcelID      kernel.UUID
	Amount        float64
	TransactionID string
	PaymentMethod string
	PaidAt        time.Time
}
