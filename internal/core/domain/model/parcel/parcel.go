package parcel

import (
	"errors"
	"fmt"
	"time"

	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/pkg/errs"
	"zapship/internal/pkg/guard"
)

// Domain errors for parcel operations.
var (
	// ErrParcelIsNotConstructed is returned when a Parcel bypassed its constructors.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")
	// ErrCreatorEmailIsRequired is returned when a parcel lacks a creator email.
	ErrCreatorEmailIsRequired = errs.NewValueIsRequiredError("creator email")
)

// Parcel is the aggregate root of the delivery lifecycle. It tracks a single
// delivery order from creation through payment, rider assignment, transit and
// delivery, plus the orthogonal cash-out state used by rider earnings.
//
// Invariants maintained here (and mirrored by the atomic SQL updates in the
// postgres adapter):
//   - delivery status values come from the closed DeliveryStatus vocabulary
//   - the assigned-rider fields are all present or all absent
//   - picked_up_at / delivered_at / cashed_out_at are stamped once and kept
//   - cash-out requires the parcel to be delivered and never regresses
type Parcel struct {
	id             kernel.UUID
	trackingID     string
	title          string
	createdByEmail string
	senderRegion   kernel.Region
	receiverRegion kernel.Region
	senderCenter   string
	deliveryCost   *float64

	paymentStatus  PaymentStatus
	deliveryStatus DeliveryStatus
	cashoutStatus  CashoutStatus

	assignedRider *RiderAssignment

	createdAt   time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time
	cashedOutAt *time.Time

	guard guard.ConstructorGuard
}

// NewParcel creates a parcel in its initial state: unpaid, not collected,
// cash-out pending, no rider. deliveryCost may be nil when the fee has not
// been quoted yet; a present cost must be non-negative.
func NewParcel(
	id kernel.UUID,
	trackingID string,
	title string,
	createdByEmail string,
	senderRegion kernel.Region,
	receiverRegion kernel.Region,
	senderCenter string,
	deliveryCost *float64,
	createdAt time.Time,
) (*Parcel, error) {
	p := &Parcel{
		trackingID:     trackingID,
		title:          title,
		senderCenter:   senderCenter,
		paymentStatus:  Unpaid,
		deliveryStatus: NotCollected,
		cashoutStatus:  CashoutPending,
		createdAt:      createdAt,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setCreatedByEmail(createdByEmail),
		p.setRegions(senderRegion, receiverRegion),
		p.setDeliveryCost(deliveryCost),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a parcel from persistence without re-running the
// initial-state defaults. All enum values must be valid; the timestamps are
// taken as stored.
func RestoreParcel(
	id kernel.UUID,
	trackingID string,
	title string,
	createdByEmail string,
	senderRegion kernel.Region,
	receiverRegion kernel.Region,
	senderCenter string,
	deliveryCost *float64,
	paymentStatus PaymentStatus,
	deliveryStatus DeliveryStatus,
	cashoutStatus CashoutStatus,
	assignedRider *RiderAssignment,
	createdAt time.Time,
	pickedUpAt *time.Time,
	deliveredAt *time.Time,
	cashedOutAt *time.Time,
) (*Parcel, error) {
	p := &Parcel{
		trackingID:   trackingID,
		title:        title,
		senderCenter: senderCenter,
		createdAt:    createdAt,
		pickedUpAt:   pickedUpAt,
		deliveredAt:  deliveredAt,
		cashedOutAt:  cashedOutAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setCreatedByEmail(createdByEmail),
		p.setRegions(senderRegion, receiverRegion),
		p.setDeliveryCost(deliveryCost),
		paymentStatus.Validate(),
		deliveryStatus.Validate(),
		cashoutStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if assignedRider != nil {
		if err := assignedRider.Validate(); err != nil {
			return nil, err
		}
		rider := *assignedRider
		p.assignedRider = &rider
	}

	p.paymentStatus = paymentStatus
	p.deliveryStatus = deliveryStatus
	p.cashoutStatus = cashoutStatus

	return p, nil
}

// Validate ensures the parcel was created through a constructor.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// ID returns the parcel identifier.
func (p *Parcel) ID() kernel.UUID { return p.id }

// TrackingID returns the customer-facing tracking code.
func (p *Parcel) TrackingID() string { return p.trackingID }

// Title returns the parcel description.
func (p *Parcel) Title() string { return p.title }

// CreatedByEmail returns the sender's email.
func (p *Parcel) CreatedByEmail() string { return p.createdByEmail }

// SenderRegion returns the origin region.
func (p *Parcel) SenderRegion() kernel.Region { return p.senderRegion }

// ReceiverRegion returns the destination region.
func (p *Parcel) ReceiverRegion() kernel.Region { return p.receiverRegion }

// SenderCenter returns the district service center the parcel ships from;
// rider matching filters applications by this district.
func (p *Parcel) SenderCenter() string { return p.senderCenter }

// DeliveryCost returns the quoted fee, or nil when none was recorded.
func (p *Parcel) DeliveryCost() *float64 { return p.deliveryCost }

// DeliveryCostValue returns the quoted fee, defaulting a missing cost to
// zero so downstream earning math never fails on legacy records.
func (p *Parcel) DeliveryCostValue() float64 {
	if p.deliveryCost == nil {
		return 0
	}
	return *p.deliveryCost
}

// PaymentStatus returns the payment state.
func (p *Parcel) PaymentStatus() PaymentStatus { return p.paymentStatus }

// DeliveryStatus returns the pipeline state.
func (p *Parcel) DeliveryStatus() DeliveryStatus { return p.deliveryStatus }

// CashoutStatus returns the settlement state.
func (p *Parcel) CashoutStatus() CashoutStatus { return p.cashoutStatus }

// AssignedRider returns the rider assignment, or nil when unassigned.
func (p *Parcel) AssignedRider() *RiderAssignment { return p.assignedRider }

// CreatedAt returns the creation time.
func (p *Parcel) CreatedAt() time.Time { return p.createdAt }

// PickedUpAt returns the pickup stamp, or nil before transit.
func (p *Parcel) PickedUpAt() *time.Time { return p.pickedUpAt }

// DeliveredAt returns the delivery stamp, or nil before delivery.
func (p *Parcel) DeliveredAt() *time.Time { return p.deliveredAt }

// CashedOutAt returns the settlement stamp, or nil while pending.
func (p *Parcel) CashedOutAt() *time.Time { return p.cashedOutAt }

// IsIntraRegion reports whether sender and receiver share a region, which
// selects the larger rider earning share.
func (p *Parcel) IsIntraRegion() bool {
	return p.senderRegion.IsEqual(p.receiverRegion)
}

// AssignRider records the rider on the parcel and moves it to rider_assigned.
// Re-assignment is an allowed overwrite from any status: dispatchers swap
// riders on parcels that are already assigned or even moving.
func (p *Parcel) AssignRider(rider RiderAssignment) error {
	if err := rider.Validate(); err != nil {
		return err
	}

	p.assignedRider = &rider
	p.deliveryStatus = RiderAssigned
	return nil
}

// ChangeDeliveryStatus moves the parcel to newStatus and applies the status's
// timestamp side effect. The stamps are idempotent: a repeated transition to
// in_transit or delivered keeps the first recorded time.
func (p *Parcel) ChangeDeliveryStatus(newStatus DeliveryStatus, now time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	p.deliveryStatus = newStatus
	if newStatus.StampsPickup() && p.pickedUpAt == nil {
		p.pickedUpAt = &now
	}
	if newStatus.StampsDelivery() && p.deliveredAt == nil {
		p.deliveredAt = &now
	}
	return nil
}

// MarkPaid records the payment and (re)initializes the delivery pipeline to
// not_collected, which is what makes the parcel visible to dispatch.
func (p *Parcel) MarkPaid() {
	p.paymentStatus = Paid
	p.deliveryStatus = NotCollected
}

// CashOut settles the rider's earning for a delivered parcel. Calling it on
// an already cashed-out parcel is a no-op that preserves the original stamp;
// calling it before delivery is an error.
func (p *Parcel) CashOut(now time.Time) error {
	if err := p.deliveryStatus.ValidateCashOut(); err != nil {
		return err
	}

	if p.cashoutStatus == CashedOut {
		return nil
	}

	p.cashoutStatus = CashedOut
	p.cashedOutAt = &now
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setCreatedByEmail(email string) error {
	if email == "" {
		return ErrCreatorEmailIsRequired
	}
	p.createdByEmail = email
	return nil
}

func (p *Parcel) setRegions(sender, receiver kernel.Region) error {
	if err := errors.Join(sender.Validate(), receiver.Validate()); err != nil {
		return err
	}
	p.senderRegion = sender
	p.receiverRegion = receiver
	return nil
}

func (p *Parcel) setDeliveryCost(cost *float64) error {
	if cost != nil && *cost < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery cost",
			fmt.Errorf("%v is negative", *cost),
		)
	}
	p.deliveryCost = cost
	return nil
}
