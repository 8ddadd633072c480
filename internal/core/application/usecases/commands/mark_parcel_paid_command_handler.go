package commands

import (
	"context"
	"errors"
	"time"

	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/core/domain/model/payment"
	"zapship/internal/pkg/errs"
)

// MarkParcelPaidCommandHandler performs the payment dual write: the parcel
// flips to paid / not_collected and a ledger entry is appended, both inside
// one transaction. If the ledger insert fails the parcel write is rolled
// back; if that rollback itself fails the handler surfaces a PartialWrite
// error so the caller knows the two stores may disagree.
type MarkParcelPaidCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewMarkParcelPaidCommandHandler creates a handler for payment settlement.
func NewMarkParcelPaidCommandHandler(uowFactory PaymentUoWFactory) MarkParcelPaidCommandHandler {
	return MarkParcelPaidCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment command.
func (h MarkParcelPaidCommandHandler) Handle(ctx context.Context, cmd MarkParcelPaidCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	aggregate.MarkPaid()

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	entry, err := payment.NewPayment(
		kernel.NewUUID(),
		cmd.ParcelID(),
		cmd.Amount(),
		cmd.TransactionID(),
		cmd.PaymentMethod(),
		cmd.PayerEmail(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.PaymentRepository().Add(ctx, entry); err != nil {
		if rbErr := uow.Rollback(ctx); rbErr != nil {
			return errs.NewPartialWriteError("mark parcel paid", errors.Join(err, rbErr))
		}
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
