package queries

import (
	"context"
	"log/slog"
	"time"

	"zapship/internal/core/domain/model/parcel"
	"zapship/internal/core/domain/services"

	"gorm.io/gorm"
)

// EarningsReportCache is the read-through cache for rendered earnings
// reports. A miss is signalled by ok == false; cache failures are treated
// as misses so the report is always computable without the cache.
type EarningsReportCache interface {
	Get(ctx context.Context, riderEmail string) (services.EarningsReport, bool)
	Set(ctx context.Context, riderEmail string, report services.EarningsReport)
}

// GetRiderEarningsQueryHandler computes rider earnings reports. Delivered
// parcels are read straight from the parcels table; the aggregation itself
// lives in the domain EarningsCalculator. Wall-clock reports are served
// from the cache when possible; pinned reports always recompute.
type GetRiderEarningsQueryHandler struct {
	db         *gorm.DB
	cache      EarningsReportCache
	calculator services.EarningsCalculator
	log        *slog.Logger
}

// NewGetRiderEarningsQueryHandler creates a handler for earnings reports.
// cache may be nil, in which case every report is computed from the database.
func NewGetRiderEarningsQueryHandler(db *gorm.DB, cache EarningsReportCache, log *slog.Logger) GetRiderEarningsQueryHandler {
	return GetRiderEarningsQueryHandler{
		db:         db,
		cache:      cache,
		calculator: services.NewEarningsCalculator(),
		log:        log,
	}
}

// Handle executes the earnings query.
func (h GetRiderEarningsQueryHandler) Handle(
	ctx context.Context,
	query GetRiderEarningsQuery,
) (services.EarningsReport, error) {
	if err := query.Validate(); err != nil {
		return services.EarningsReport{}, err
	}

	if h.cache != nil && !query.IsPinned() {
		if report, ok := h.cache.Get(ctx, query.RiderEmail()); ok {
			return report, nil
		}
	}

	views, err := h.loadDeliveredParcels(ctx, query.RiderEmail())
	if err != nil {
		return services.EarningsReport{}, err
	}

	asOf := query.AsOf()
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	report := h.calculator.Calculate(views, asOf).Render()

	if h.cache != nil && !query.IsPinned() {
		h.cache.Set(ctx, query.RiderEmail(), report)
	}

	h.log.DebugContext(ctx, "computed rider earnings",
		"rider", query.RiderEmail(), "delivered_parcels", len(views))

	return report, nil
}

func (h GetRiderEarningsQueryHandler) loadDeliveredParcels(
	ctx context.Context,
	riderEmail string,
) ([]services.DeliveredParcelView, error) {
	views := make([]services.DeliveredParcelView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			delivery_cost,
			sender_region,
			receiver_region,
			cashout_status,
			delivered_at
		FROM parcels
		WHERE rider_email = ?
		  AND delivery_status = ?
	`, riderEmail, parcel.Delivered).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var view services.DeliveredParcelView
		var cashoutStatus int

		err = rows.Scan(
			&view.DeliveryCost,
			&view.SenderRegion,
			&view.ReceiverRegion,
			&cashoutStatus,
			&view.DeliveredAt,
		)
		if err != nil {
			return nil, err
		}

		view.CashedOut = parcel.CashoutStatus(cashoutStatus) == parcel.CashedOut
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
