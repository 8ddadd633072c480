package commands

import (
	"context"
	"time"

	"zapship/internal/core/domain/model/parcel"
)

// CreateParcelCommandHandler handles the business logic for parcel creation.
// New parcels start unpaid, uncollected and cash-out pending.
//
// Example:
//
//	handler := NewCreateParcelCommandHandler(uowFactory)
//	cmd, _ := NewCreateParcelCommand(...)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("parcel creation failed: %w", err)
//	}
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel creation.
// Requires a ParcelUoWFactory for transactional persistence.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel creation command.
// Builds the aggregate in its initial state and persists it transactionally.
func (h *CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newParcel, err := parcel.NewParcel(
		cmd.ParcelID(),
		cmd.TrackingID(),
		cmd.Title(),
		cmd.CreatedByEmail(),
		cmd.SenderRegion(),
		cmd.ReceiverRegion(),
		cmd.SenderCenter(),
		cmd.DeliveryCost(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
