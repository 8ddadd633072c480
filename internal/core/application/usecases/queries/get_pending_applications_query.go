package queries

import (
	"errors"

	"zapship/internal/pkg/guard"
)

var ErrGetPendingApplicationsQueryIsNotConstructed = errors.New(
	"GetPendingApplicationsQuery must be created via NewGetPendingApplicationsQuery constructor",
)

// GetPendingApplicationsQuery lists rider applications awaiting review,
// most recent first.
type GetPendingApplicationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingApplicationsQuery creates a query for the review backlog.
func NewGetPendingApplicationsQuery() GetPendingApplicationsQuery {
	return GetPendingApplicationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingApplicationsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingApplicationsQueryIsNotConstructed)
}
