package riderrepo

import (
	"context"
	"errors"

	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/core/domain/model/rider"
	"zapship/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRiderApplicationRepository implements RiderApplicationRepository using GORM.
type GormRiderApplicationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRiderApplicationRepository creates a new GORM application repository.
func NewGormRiderApplicationRepository(db *gorm.DB, tracker aggregateTracker) *GormRiderApplicationRepository {
	return &GormRiderApplicationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly submitted application.
func (r *GormRiderApplicationRepository) Add(ctx context.Context, aggregate *rider.RiderApplication) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves review decisions and work status changes.
func (r *GormRiderApplicationRepository) Update(ctx context.Context, aggregate *rider.RiderApplication) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RiderApplicationDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":               dto.Name,
		"phone":              dto.Phone,
		"district":           dto.District,
		"region":             dto.Region,
		"application_status": dto.ApplicationStatus,
		"work_status":        dto.WorkStatus,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("rider application", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an application by ID. Like the parcel repository, the row is
// read with SELECT ... FOR UPDATE so a review transaction and a work status
// change cannot interleave on the same application.
func (r *GormRiderApplicationRepository) Get(ctx context.Context, id kernel.UUID) (*rider.RiderApplication, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RiderApplicationDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rider application", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves the application submitted by the given email.
func (r *GormRiderApplicationRepository) GetByEmail(ctx context.Context, email string) (*rider.RiderApplication, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto RiderApplicationDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rider application", email)
		}
		return nil, err
	}

	return toDomain(dto)
}
