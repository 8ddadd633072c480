package queries

import (
	"errors"

	"zapship/internal/pkg/guard"
)

var ErrGetAssignableParcelsQueryIsNotConstructed = errors.New(
	"GetAssignableParcelsQuery must be created via NewGetAssignableParcelsQuery constructor",
)

// GetAssignableParcelsQuery lists parcels ready for dispatch: paid but not
// yet collected. This is the admin's assignment worklist.
type GetAssignableParcelsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAssignableParcelsQuery creates a query for the dispatch worklist.
func NewGetAssignableParcelsQuery() GetAssignableParcelsQuery {
	return GetAssignableParcelsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAssignableParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignableParcelsQueryIsNotConstructed)
}
