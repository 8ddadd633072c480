package commands

import (
	"errors"
	"fmt"

	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/pkg/errs"
	"zapship/internal/pkg/guard"
)

var ErrMarkParcelPaidCommandIsNotConstructed = errors.New(
	"MarkParcelPaidCommand must be created via NewMarkParcelPaidCommand constructor",
)

// MarkParcelPaidCommand settles a parcel's delivery fee: flips the parcel to
// paid and records the gateway transaction in the payment ledger. Both
// writes land in one transaction.
type MarkParcelPaidCommand struct { //nolint:recvcheck //using for validation
	parcelID      kernel.UUID
	amount        float64
	transactionID string
	paymentMethod string
	payerEmail    string

	guard guard.ConstructorGuard
}

// NewMarkParcelPaidCommand creates a command to record a parcel payment.
// Validates the parcel ID, a non-negative amount, and the transaction
// reference, method and payer email.
func NewMarkParcelPaidCommand(
	parcelID kernel.UUID,
	amount float64,
	transactionID string,
	paymentMethod string,
	payerEmail string,
) (MarkParcelPaidCommand, error) {
	cmd := MarkParcelPaidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setAmount(amount),
		cmd.setTransaction(transactionID, paymentMethod),
		cmd.setPayerEmail(payerEmail),
	); err != nil {
		return MarkParcelPaidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkParcelPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkParcelPaidCommandIsNotConstructed)
}

// ParcelID returns the parcel being paid for.
func (c MarkParcelPaidCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Amount returns the paid amount.
func (c MarkParcelPaidCommand) Amount() float64 {
	return c.amount
}

// TransactionID returns the gateway transaction reference.
func (c MarkParcelPaidCommand) TransactionID() string {
	return c.transactionID
}

// PaymentMethod returns how the payment was made.
func (c MarkParcelPaidCommand) PaymentMethod() string {
	return c.paymentMethod
}

// PayerEmail returns the payer's email.
func (c MarkParcelPaidCommand) PayerEmail() string {
	return c.payerEmail
}

func (c *MarkParcelPaidCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *MarkParcelPaidCommand) setAmount(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%v is negative", amount))
	}

	c.amount = amount
	return nil
}

func (c *MarkParcelPaidCommand) setTransaction(transactionID, paymentMethod string) error {
	if transactionID == "" {
		return errs.NewValueIsRequiredError("transaction id")
	}
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("payment method")
	}

	c.transactionID = transactionID
	c.paymentMethod = paymentMethod
	return nil
}

func (c *MarkParcelPaidCommand) setPayerEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("payer email")
	}

	c.payerEmail = email
	return nil
}
