// Package payment contains the payment ledger entry written alongside a
// parcel when its delivery fee is paid. Ledger entries are append-only:
// nothing in the system updates or deletes one after MarkParcelPaid commits.
package payment

import (
	"errors"
	"fmt"
	"time"

	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/pkg/errs"
	"zapship/internal/pkg/guard"
)

// Domain errors for payment ledger entries.
var (
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")
	ErrTransactionIDIsRequired = errs.NewValueIsRequiredError("transaction id")
	ErrPaymentMethodIsRequired = errs.NewValueIsRequiredError("payment method")
	ErrPayerEmailIsRequired    = errs.NewValueIsRequiredError("payer email")
)

// Payment is one ledger entry: the durable record that a parcel's delivery
// fee was paid, keyed to the parcel it funds.
type Payment struct {
	id             kernel.UUID
	parcelID       kernel.UUID
	amount         float64
	transactionID  string
	paymentMethod  string
	createdByEmail string
	paidAt         time.Time

	guard guard.ConstructorGuard
}

// NewPayment creates a ledger entry for a parcel payment.
func NewPayment(
	id kernel.UUID,
	parcelID kernel.UUID,
	amount float64,
	transactionID string,
	paymentMethod string,
	createdByEmail string,
	paidAt time.Time,
) (*Payment, error) {
	p := &Payment{
		paidAt: paidAt,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setIDs(id, parcelID),
		p.setAmount(amount),
		p.setTransaction(transactionID, paymentMethod),
		p.setCreatedByEmail(createdByEmail),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment reconstructs a ledger entry from persistence.
func RestorePayment(
	id kernel.UUID,
	parcelID kernel.UUID,
	amount float64,
	transactionID string,
	paymentMethod string,
	createdByEmail string,
	paidAt time.Time,
) (*Payment, error) {
	return NewPayment(id, parcelID, amount, transactionID, paymentMethod, createdByEmail, paidAt)
}

// Validate ensures the payment was created through a constructor.
func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// ID returns the ledger entry identifier.
func (p *Payment) ID() kernel.UUID { return p.id }

// ParcelID returns the parcel this payment funds.
func (p *Payment) ParcelID() kernel.UUID { return p.parcelID }

// Amount returns the paid amount.
func (p *Payment) Amount() float64 { return p.amount }

// TransactionID returns the gateway transaction reference.
func (p *Payment) TransactionID() string { return p.transactionID }

// PaymentMethod returns how the payment was made.
func (p *Payment) PaymentMethod() string { return p.paymentMethod }

// CreatedByEmail returns the payer's email.
func (p *Payment) CreatedByEmail() string { return p.createdByEmail }

// PaidAt returns when the payment landed.
func (p *Payment) PaidAt() time.Time { return p.paidAt }

func (p *Payment) setIDs(id, parcelID kernel.UUID) error {
	if err := errors.Join(id.Validate(), parcelID.Validate()); err != nil {
		return err
	}
	p.id = id
	p.parcelID = parcelID
	return nil
}

func (p *Payment) setAmount(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%v is negative", amount))
	}
	p.amount = amount
	return nil
}

func (p *Payment) setTransaction(transactionID, paymentMethod string) error {
	if transactionID == "" {
		return ErrTransactionIDIsRequired
	}
	if paymentMethod == "" {
		return ErrPaymentMethodIsRequired
	}
	p.transactionID = transactionID
	p.paymentMethod = paymentMethod
	return nil
}

func (p *Payment) setCreatedByEmail(email string) error {
	if email == "" {
		return ErrPayerEmailIsRequired
	}
	p.createdByEmail = email
	return nil
}
