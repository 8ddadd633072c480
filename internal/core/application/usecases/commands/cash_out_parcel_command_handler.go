package commands

import (
	"context"
	"time"
)

// CashOutParcelCommandHandler settles rider earnings. Settlement is an
// admin capability and only applies to delivered parcels; anything earlier
// in the pipeline is rejected by the aggregate.
type CashOutParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCashOutParcelCommandHandler creates a handler for cash-out settlement.
func NewCashOutParcelCommandHandler(uowFactory ParcelUoWFactory) CashOutParcelCommandHandler {
	return CashOutParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cash-out command.
// Returns ObjectNotFound for a missing parcel and ValueIsInvalid when the
// parcel has not been delivered yet. A repeat cash-out commits unchanged.
func (h CashOutParcelCommandHandler) Handle(ctx context.Context, cmd CashOutParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Caller().RequireAdmin("cash out parcel"); err != nil {
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

	if err = aggregate.CashOut(time.Now().UTC()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
