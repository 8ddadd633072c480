// Package parcelrepo provides data transfer objects and mapping functions
// for parcel persistence. It implements the repository pattern for the
// parcel aggregate, converting between the domain model and the relational
// representation.
package parcelrepo

import (
	"time"

	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. The rider trio and the three lifecycle timestamps are
// nullable; a missing delivery cost stays NULL rather than zero so the
// earnings math can tell "free" from "unquoted".
type ParcelDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingID     string    `gorm:"uniqueIndex"`
	Title          string
	CreatedByEmail string `gorm:"index"`
	SenderRegion   string
	ReceiverRegion string
	SenderCenter   string
	DeliveryCost   *float64
	PaymentStatus  int
	DeliveryStatus int `gorm:"index"`
	CashoutStatus  int
	RiderID        *uuid.UUID `gorm:"type:uuid"`
	RiderName      *string
	RiderEmail     *string `gorm:"index"`
	CreatedAt      time.Time
	PickedUpAt     *time.Time
	DeliveredAt    *time.Time
	CashedOutAt    *time.Time
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	dto := ParcelDTO{
		ID:             aggregate.ID().Bytes(),
		TrackingID:     aggregate.TrackingID(),
		Title:          aggregate.Title(),
		CreatedByEmail: aggregate.CreatedByEmail(),
		SenderRegion:   aggregate.SenderRegion().String(),
		ReceiverRegion: aggregate.ReceiverRegion().String(),
		SenderCenter:   aggregate.SenderCenter(),
		DeliveryCost:   aggregate.DeliveryCost(),
		PaymentStatus:  int(aggregate.PaymentStatus()),
		DeliveryStatus: int(aggregate.DeliveryStatus()),
		CashoutStatus:  int(aggregate.CashoutStatus()),
		CreatedAt:      aggregate.CreatedAt(),
		PickedUpAt:     aggregate.PickedUpAt(),
		DeliveredAt:    aggregate.DeliveredAt(),
		CashedOutAt:    aggregate.CashedOutAt(),
	}

	if rider := aggregate.AssignedRider(); rider != nil {
		riderID := rider.RiderID().Bytes()
		name := rider.Name()
		email := rider.Email()
		dto.RiderID = &riderID
		dto.RiderName = &name
		dto.RiderEmail = &email
	}

	return dto
}

// toDomain converts a database DTO to a parcel aggregate using RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	senderRegion, err := kernel.NewRegion(dto.SenderRegion)
	if err != nil {
		return nil, err
	}
	receiverRegion, err := kernel.NewRegion(dto.ReceiverRegion)
	if err != nil {
		return nil, err
	}

	var assignedRider *parcel.RiderAssignment
	if dto.RiderID != nil && dto.RiderName != nil && dto.RiderEmail != nil {
		riderID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}

		assignment, riderErr := parcel.NewRiderAssignment(riderID, *dto.RiderName, *dto.RiderEmail)
		if riderErr != nil {
			return nil, riderErr
		}
		assignedRider = &assignment
	}

	return parcel.RestoreParcel(
		id,
		dto.TrackingID,
		dto.Title,
		dto.CreatedByEmail,
		senderRegion,
		receiverRegion,
		dto.SenderCenter,
		dto.DeliveryCost,
		parcel.PaymentStatus(dto.PaymentStatus),
		parcel.DeliveryStatus(dto.DeliveryStatus),
		parcel.CashoutStatus(dto.CashoutStatus),
		assignedRider,
		dto.CreatedAt,
		dto.PickedUpAt,
		dto.DeliveredAt,
		dto.CashedOutAt,
	)
}
