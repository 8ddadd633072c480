package parcelrepo

import (
	"context"
	"errors"

	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/core/domain/model/parcel"
	"zapship/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel to the database.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
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

// Update saves an existing parcel to the database. The lifecycle stamps go
// through COALESCE so a stamp already recorded by a concurrent or earlier
// transition is never overwritten or cleared.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ParcelDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"title":           dto.Title,
		"delivery_cost":   dto.DeliveryCost,
		"payment_status":  dto.PaymentStatus,
		"delivery_status": dto.DeliveryStatus,
		"cashout_status":  dto.CashoutStatus,
		"rider_id":        dto.RiderID,
		"rider_name":      dto.RiderName,
		"rider_email":     dto.RiderEmail,
		"picked_up_at":    gorm.Expr("COALESCE(picked_up_at, ?)", dto.PickedUpAt),
		"delivered_at":    gorm.Expr("COALESCE(delivered_at, ?)", dto.DeliveredAt),
		"cashed_out_at":   gorm.Expr("COALESCE(cashed_out_at, ?)", dto.CashedOutAt),
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("parcel", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a parcel by ID. The row is read with SELECT ... FOR UPDATE:
// command handlers call Get inside a transaction and then write the full row
// back, so the lock is what keeps a concurrent transition from reading the
// same stale state and regressing the other writer's columns.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

