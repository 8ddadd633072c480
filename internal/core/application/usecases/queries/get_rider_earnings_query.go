// Package queries contains read operations over the persistence layer.
// Implements the Query side of the CQRS architecture with raw SQL read
// models, bypassing the aggregates for performance.
package queries

import (
	"errors"
	"time"

	"zapship/internal/pkg/errs"
	"zapship/internal/pkg/guard"
)

var ErrGetRiderEarningsQueryIsNotConstructed = errors.New(
	"GetRiderEarningsQuery must be created via NewGetRiderEarningsQuery constructor",
)

// GetRiderEarningsQuery computes the earnings report for one rider: totals
// split by cash-out state plus rolling today/week/month/year windows over
// the rider's delivered parcels.
//
// Example:
//
//	query, _ := NewGetRiderEarningsQuery("rahim@example.com")
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to compute earnings: %w", err)
//	}
//	fmt.Printf("pending: %s, cashed out: %s\n", report.Pending, report.CashedOut)
type GetRiderEarningsQuery struct {
	riderEmail string
	asOf       time.Time

	guard guard.ConstructorGuard
}

// NewGetRiderEarningsQuery creates a query for a rider's earnings report
// relative to the current instant.
func NewGetRiderEarningsQuery(riderEmail string) (GetRiderEarningsQuery, error) {
	if riderEmail == "" {
		return GetRiderEarningsQuery{}, errs.NewValueIsRequiredError("rider email")
	}

	return GetRiderEarningsQuery{
		riderEmail: riderEmail,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// NewGetRiderEarningsQueryAsOf creates a query pinned to a reference instant
// instead of the wall clock. Pinned queries bypass the report cache because
// the cached report is only valid for "now".
func NewGetRiderEarningsQueryAsOf(riderEmail string, asOf time.Time) (GetRiderEarningsQuery, error) {
	query, err := NewGetRiderEarningsQuery(riderEmail)
	if err != nil {
		return GetRiderEarningsQuery{}, err
	}
	if asOf.IsZero() {
		return GetRiderEarningsQuery{}, errs.NewValueIsRequiredError("as-of instant")
	}

	query.asOf = asOf
	return query, nil
}

// Validate ensures the query was created through a constructor.
func (q GetRiderEarningsQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderEarningsQueryIsNotConstructed)
}

// RiderEmail returns the rider whose earnings are computed.
func (q GetRiderEarningsQuery) RiderEmail() string {
	return q.riderEmail
}

// AsOf returns the pinned reference instant, zero when the query follows
// the wall clock.
func (q GetRiderEarningsQuery) AsOf() time.Time {
	return q.asOf
}

// IsPinned reports whether the query carries an explicit reference instant.
func (q GetRiderEarningsQuery) IsPinned() bool {
	return !q.asOf.IsZero()
}
