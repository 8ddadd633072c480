package services_test

import (
	"testing"
	"time"

	"zapship/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func TestEarningsCalculator_ParcelEarning(t *testing.T) {
	calc := services.NewEarningsCalculator()

	t.Run("intra_region_pays_eighty_percent", func(t *testing.T) {
		earning := calc.ParcelEarning(services.DeliveredParcelView{
			DeliveryCost: ptr(100), SenderRegion: "A", ReceiverRegion: "A",
		})
		assert.InDelta(t, 80, earning, 1e-9)
	})

	t.Run("inter_region_pays_thirty_percent", func(t *testing.T) {
		earning := calc.ParcelEarning(services.DeliveredParcelView{
			DeliveryCost: ptr(100), SenderRegion: "A", ReceiverRegion: "B",
		})
		assert.InDelta(t, 30, earning, 1e-9)
	})

	t.Run("missing_cost_earns_zero", func(t *testing.T) {
		earning := calc.ParcelEarning(services.DeliveredParcelView{
			SenderRegion: "A", ReceiverRegion: "A",
		})
		assert.Zero(t, earning)
	})
}

func TestEarningsCalculator_Calculate(t *testing.T) {
	calc := services.NewEarningsCalculator()
	// Wednesday, so the Sunday-based week starts on 2026-08-23.
	asOf := time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC)

	t.Run("empty_set_yields_zero_everywhere", func(t *testing.T) {
		summary := calc.Calculate(nil, asOf)

		assert.Zero(t, summary.Total)
		assert.Zero(t, summary.CashedOut)
		assert.Zero(t, summary.Pending)
		assert.Zero(t, summary.Today)
		assert.Zero(t, summary.Week)
		assert.Zero(t, summary.Month)
		assert.Zero(t, summary.Year)
	})

	t.Run("cashed_out_plus_pending_equals_total", func(t *testing.T) {
		parcels := []services.DeliveredParcelView{
			{DeliveryCost: ptr(120.5), SenderRegion: "A", ReceiverRegion: "A", CashedOut: true},
			{DeliveryCost: ptr(99.99), SenderRegion: "A", ReceiverRegion: "B"},
			{DeliveryCost: ptr(37.77), SenderRegion: "C", ReceiverRegion: "C"},
		}

		summary := calc.Calculate(parcels, asOf)

		assert.Equal(t, summary.Total, summary.CashedOut+summary.Pending)
		assert.Positive(t, summary.CashedOut)
		assert.Positive(t, summary.Pending)
	})

	t.Run("delivery_today_counts_in_all_four_windows", func(t *testing.T) {
		parcels := []services.DeliveredParcelView{{
			DeliveryCost: ptr(100), SenderRegion: "A", ReceiverRegion: "A",
			DeliveredAt: timePtr(asOf.Add(-2 * time.Hour)),
		}}

		summary := calc.Calculate(parcels, asOf)

		assert.InDelta(t, 80, summary.Today, 1e-9)
		assert.InDelta(t, 80, summary.Week, 1e-9)
		assert.InDelta(t, 80, summary.Month, 1e-9)
		assert.InDelta(t, 80, summary.Year, 1e-9)
	})

	t.Run("window_starts_are_inclusive", func(t *testing.T) {
		dayStart := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
		parcels := []services.DeliveredParcelView{{
			DeliveryCost: ptr(100), SenderRegion: "A", ReceiverRegion: "A",
			DeliveredAt: timePtr(dayStart),
		}}

		summary := calc.Calculate(parcels, asOf)

		assert.InDelta(t, 80, summary.Today, 1e-9)
	})

	t.Run("yesterday_counts_toward_week_but_not_today", func(t *testing.T) {
		parcels := []services.DeliveredParcelView{{
			DeliveryCost: ptr(100), SenderRegion: "A", ReceiverRegion: "A",
			DeliveredAt: timePtr(time.Date(2026, 8, 25, 23, 0, 0, 0, time.UTC)),
		}}

		summary := calc.Calculate(parcels, asOf)

		assert.Zero(t, summary.Today)
		assert.InDelta(t, 80, summary.Week, 1e-9)
		assert.InDelta(t, 80, summary.Month, 1e-9)
	})

	t.Run("before_sunday_week_start_counts_toward_month_only", func(t *testing.T) {
		// Saturday 2026-08-22 precedes the week start (Sunday 2026-08-23).
		parcels := []services.DeliveredParcelView{{
			DeliveryCost: ptr(100), SenderRegion: "A", ReceiverRegion: "A",
			DeliveredAt: timePtr(time.Date(2026, 8, 22, 12, 0, 0, 0, time.UTC)),
		}}

		summary := calc.Calculate(parcels, asOf)

		assert.Zero(t, summary.Today)
		assert.Zero(t, summary.Week)
		assert.InDelta(t, 80, summary.Month, 1e-9)
		assert.InDelta(t, 80, summary.Year, 1e-9)
	})

	t.Run("last_year_counts_nowhere", func(t *testing.T) {
		parcels := []services.DeliveredParcelView{{
			DeliveryCost: ptr(100), SenderRegion: "A", ReceiverRegion: "A",
			DeliveredAt: timePtr(time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC)),
		}}

		summary := calc.Calculate(parcels, asOf)

		assert.Zero(t, summary.Today)
		assert.Zero(t, summary.Week)
		assert.Zero(t, summary.Month)
		assert.Zero(t, summary.Year)
		assert.InDelta(t, 80, summary.Total, 1e-9)
	})

	t.Run("missing_delivered_at_counts_in_totals_only", func(t *testing.T) {
		parcels := []services.DeliveredParcelView{{
			DeliveryCost: ptr(100), SenderRegion: "A", ReceiverRegion: "B",
		}}

		summary := calc.Calculate(parcels, asOf)

		assert.InDelta(t, 30, summary.Total, 1e-9)
		assert.Zero(t, summary.Year)
	})
}

func TestEarningsSummary_Render(t *testing.T) {
	t.Run("zero_summary_renders_all_zero_strings", func(t *testing.T) {
		report := services.EarningsSummary{}.Render()

		assert.Equal(t, "0", report.Overall)
		assert.Equal(t, "0", report.Total)
		assert.Equal(t, "0", report.CashedOut)
		assert.Equal(t, "0", report.Pending)
		assert.Equal(t, "0", report.Today)
		assert.Equal(t, "0", report.Week)
		assert.Equal(t, "0", report.Month)
		assert.Equal(t, "0", report.Year)
	})

	t.Run("rounds_to_whole_amounts", func(t *testing.T) {
		report := services.EarningsSummary{Total: 80.5, CashedOut: 50.4, Pending: 30.1}.Render()

		assert.Equal(t, "81", report.Total)
		assert.Equal(t, "81", report.Overall)
		assert.Equal(t, "50", report.CashedOut)
		assert.Equal(t, "30", report.Pending)
	})

	t.Run("overall_mirrors_total", func(t *testing.T) {
		report := services.EarningsSummary{Total: 123}.Render()
		require.Equal(t, report.Total, report.Overall)
	})
}
