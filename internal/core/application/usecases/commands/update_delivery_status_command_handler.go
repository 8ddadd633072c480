package commands

import (
	"context"
	"time"
)

// UpdateDeliveryStatusCommandHandler moves parcels through the delivery
// pipeline on behalf of riders. The pickup and delivery timestamps are
// stamped on first transition only; replays keep the original stamp.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery
// status transitions.
func NewUpdateDeliveryStatusCommandHandler(uowFactory ParcelUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
// Requires the rider capability, loads the parcel, applies the transition
// with its timestamp side effect and persists the result.
func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Caller().RequireRider("update delivery status"); err != nil {
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

	if err = aggregate.ChangeDeliveryStatus(cmd.NewStatus(), time.Now().UTC()); err != nil {
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
