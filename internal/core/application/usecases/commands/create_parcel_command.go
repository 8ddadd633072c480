package commands

import (
	"errors"

	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/pkg/errs"
	"zapship/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
	ErrTrackingIDIsRequired = errs.NewValueIsRequiredError("tracking id")
	ErrTitleIsRequired      = errs.NewValueIsRequiredError("title")
)

// CreateParcelCommand represents a request to register a new parcel for
// delivery. The parcel starts unpaid and uncollected; payment and dispatch
// happen through separate commands.
//
// Example:
//
//	parcelID := kernel.NewUUID()
//	cmd, err := NewCreateParcelCommand(
//	    parcelID, "ZS-2041", "Documents", "sender@example.com",
//	    dhaka, sylhet, "Dhaka Hub", &cost,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create parcel: %w", err)
//	}
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID       kernel.UUID
	trackingID     string
	title          string
	createdByEmail string
	senderRegion   kernel.Region
	receiverRegion kernel.Region
	senderCenter   string
	deliveryCost   *float64

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// Validates the parcel ID, tracking code, title, creator email and both
// regions. The delivery cost may be nil when the fee is quoted later.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	trackingID string,
	title string,
	createdByEmail string,
	senderRegion kernel.Region,
	receiverRegion kernel.Region,
	senderCenter string,
	deliveryCost *float64,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		senderCenter: senderCenter,
		deliveryCost: deliveryCost,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setTrackingID(trackingID),
		cmd.setTitle(title),
		cmd.setCreatedByEmail(createdByEmail),
		cmd.setRegions(senderRegion, receiverRegion),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateParcelCommandIsNotConstructed if validation fails.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the unique identifier for the parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// TrackingID returns the customer-facing tracking code.
func (c CreateParcelCommand) TrackingID() string {
	return c.trackingID
}

// Title returns the parcel description.
func (c CreateParcelCommand) Title() string {
	return c.title
}

// CreatedByEmail returns the sender's email.
func (c CreateParcelCommand) CreatedByEmail() string {
	return c.createdByEmail
}

// SenderRegion returns the origin region.
func (c CreateParcelCommand) SenderRegion() kernel.Region {
	return c.senderRegion
}

// ReceiverRegion returns the destination region.
func (c CreateParcelCommand) ReceiverRegion() kernel.Region {
	return c.receiverRegion
}

// SenderCenter returns the district service center the parcel ships from.
func (c CreateParcelCommand) SenderCenter() string {
	return c.senderCenter
}

// DeliveryCost returns the quoted fee, or nil when none was provided.
func (c CreateParcelCommand) DeliveryCost() *float64 {
	return c.deliveryCost
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setTrackingID(trackingID string) error {
	if trackingID == "" {
		return ErrTrackingIDIsRequired
	}

	c.trackingID = trackingID
	return nil
}

func (c *CreateParcelCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *CreateParcelCommand) setCreatedByEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("creator email")
	}

	c.createdByEmail = email
	return nil
}

func (c *CreateParcelCommand) setRegions(sender, receiver kernel.Region) error {
	if err := errors.Join(sender.Validate(), receiver.Validate()); err != nil {
		return err
	}

	c.senderRegion = sender
	c.receiverRegion = receiver
	return nil
}
