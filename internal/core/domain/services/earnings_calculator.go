package services

import (
	"fmt"
	"math"
	"time"
)

// Rider share of the delivery fee. A delivery completed inside one region
// pays the full rider share; a cross-region delivery pays less because the
// receiving region's operation handles the final leg.
const (
	IntraRegionShare = 0.8
	InterRegionShare = 0.3
)

// DeliveredParcelView is the read-model row the calculator consumes: the
// slice of a delivered parcel that matters for earnings. DeliveryCost is a
// pointer because legacy records may lack a quoted fee; such parcels
// contribute zero rather than failing the computation.
type DeliveredParcelView struct {
	DeliveryCost   *float64
	SenderRegion   string
	ReceiverRegion string
	CashedOut      bool
	DeliveredAt    *time.Time
}

// EarningsSummary is the aggregation result, kept in raw float64 form so the
// bucket identity cashed_out + pending == total holds exactly; rendering to
// the zero-decimal wire format happens in Render.
type EarningsSummary struct {
	Total     float64
	CashedOut float64
	Pending   float64
	Today     float64
	Week      float64
	Month     float64
	Year      float64
}

// EarningsReport is the wire-format summary: every bucket rendered as a
// non-negative integer-rounded monetary string. Overall mirrors Total; the
// historical dashboard displayed both.
type EarningsReport struct {
	Overall   string `json:"overall"`
	Total     string `json:"total"`
	CashedOut string `json:"cashed_out"`
	Pending   string `json:"pending"`
	Today     string `json:"today"`
	Week      string `json:"week"`
	Month     string `json:"month"`
	Year      string `json:"year"`
}

// EarningsCalculator is a stateless domain service that turns a snapshot of
// a rider's delivered parcels into an earnings summary: per-parcel region
// split, cash-out partition, and four independent rolling calendar windows.
type EarningsCalculator struct{}

// NewEarningsCalculator creates a new EarningsCalculator instance.
func NewEarningsCalculator() EarningsCalculator {
	return EarningsCalculator{}
}

// ParcelEarning computes a single parcel's rider earning: cost times the
// intra-region share when sender and receiver regions match, the
// inter-region share otherwise. A missing cost earns zero.
func (c EarningsCalculator) ParcelEarning(view DeliveredParcelView) float64 {
	if view.DeliveryCost == nil {
		return 0
	}
	if view.SenderRegion == view.ReceiverRegion {
		return *view.DeliveryCost * IntraRegionShare
	}
	return *view.DeliveryCost * InterRegionShare
}

// Calculate aggregates the delivered set as of the given instant.
//
// Each parcel lands in exactly one of the cashed-out / pending buckets, so
// the two always sum to the total. The windows are evaluated independently:
// a parcel delivered today also counts toward week, month and year. Window
// starts are the beginnings of the current calendar day, Sunday-based week,
// month and year relative to asOf, each inclusive of its start instant.
func (c EarningsCalculator) Calculate(parcels []DeliveredParcelView, asOf time.Time) EarningsSummary {
	dayStart := startOfDay(asOf)
	weekStart := dayStart.AddDate(0, 0, -int(asOf.Weekday()))
	monthStart := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())
	yearStart := time.Date(asOf.Year(), time.January, 1, 0, 0, 0, 0, asOf.Location())

	var summary EarningsSummary
	for _, view := range parcels {
		earning := c.ParcelEarning(view)

		if view.CashedOut {
			summary.CashedOut += earning
		} else {
			summary.Pending += earning
		}

		if view.DeliveredAt == nil {
			continue
		}
		deliveredAt := *view.DeliveredAt
		if !deliveredAt.Before(dayStart) {
			summary.Today += earning
		}
		if !deliveredAt.Before(weekStart) {
			summary.Week += earning
		}
		if !deliveredAt.Before(monthStart) {
			summary.Month += earning
		}
		if !deliveredAt.Before(yearStart) {
			summary.Year += earning
		}
	}

	// Derived, not separately accumulated, so the bucket identity is exact.
	summary.Total = summary.CashedOut + summary.Pending
	return summary
}

// Render formats every bucket as an integer-rounded monetary string.
func (s EarningsSummary) Render() EarningsReport {
	return EarningsReport{
		Overall:   renderAmount(s.Total),
		Total:     renderAmount(s.Total),
		CashedOut: renderAmount(s.CashedOut),
		Pending:   renderAmount(s.Pending),
		Today:     renderAmount(s.Today),
		Week:      renderAmount(s.Week),
		Month:     renderAmount(s.Month),
		Year:      renderAmount(s.Year),
	}
}

// renderAmount rounds half away from zero, matching how the historical
// dashboard rounded amounts.
func renderAmount(v float64) string {
	return fmt.Sprintf("%d", int64(math.Round(v)))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
