// Package riderrepo persists rider applications: the onboarding records
// admins review and the active rider pool dispatch matches against.
package riderrepo

import (
	"time"

	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderApplicationDTO represents the database structure for applications.
type RiderApplicationDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string
	Email             string `gorm:"uniqueIndex"`
	Phone             string
	District          string `gorm:"index"`
	Region            string
	ApplicationStatus int `gorm:"index"`
	WorkStatus        int
	AppliedAt         time.Time
}

// TableName specifies the database table name for rider applications.
func (RiderApplicationDTO) TableName() string {
	return "rider_applications"
}

func fromDomain(aggregate *rider.RiderApplication) RiderApplicationDTO {
	return RiderApplicationDTO{
		ID:                aggregate.ID().Bytes(),
		Name:              aggregate.Name(),
		Email:             aggregate.Email(),
		Phone:             aggregate.Phone(),
		District:          aggregate.District(),
		Region:            aggregate.Region().String(),
		ApplicationStatus: int(aggregate.ApplicationStatus()),
		WorkStatus:        int(aggregate.WorkStatus()),
		AppliedAt:         aggregate.AppliedAt(),
	}
}

func toDomain(dto RiderApplicationDTO) (*rider.RiderApplication, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	region, err := kernel.NewRegion(dto.Region)
	if err != nil {
		return nil, err
	}

	return rider.RestoreRiderApplication(
		id,
		dto.Name,
		dto.Email,
		dto.Phone,
		dto.District,
		region,
		rider.ApplicationStatus(dto.ApplicationStatus),
		rider.WorkStatus(dto.WorkStatus),
		dto.AppliedAt,
	)
}
