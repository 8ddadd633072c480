package queries

import (
	"errors"

	"zapship/internal/pkg/guard"
)

var ErrGetPendingCashoutTotalsQueryIsNotConstructed = errors.New(
	"GetPendingCashoutTotalsQuery must be created via NewGetPendingCashoutTotalsQuery constructor",
)

// GetPendingCashoutTotalsQuery sums, per rider, the earnings on delivered
// parcels that have not been cashed out yet. Feeds the reminder job.
type GetPendingCashoutTotalsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingCashoutTotalsQuery creates a query for pending settlements.
func NewGetPendingCashoutTotalsQuery() GetPendingCashoutTotalsQuery {
	return GetPendingCashoutTotalsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingCashoutTotalsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingCashoutTotalsQueryIsNotConstructed)
}

// PendingCashoutResponse is one rider's outstanding settlement balance.
type PendingCashoutResponse struct {
	RiderEmail     string
	ParcelCount    int
	PendingEarning float64
}
