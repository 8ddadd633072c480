package parcel

import (
	"errors"

	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/pkg/errs"
)

// Rider assignment validation errors.
var (
	ErrRiderNameIsRequired  = errs.NewValueIsRequiredError("rider name")
	ErrRiderEmailIsRequired = errs.NewValueIsRequiredError("rider email")
)

// RiderAssignment bundles the rider identity recorded on a parcel when a
// rider is assigned. Modelling the three fields as one value object keeps
// the invariant that they are either all present or all absent.
type RiderAssignment struct {
	riderID kernel.UUID
	name    string
	email   string
}

// NewRiderAssignment creates a RiderAssignment, validating that the rider ID
// is well-formed and that name and email are non-empty.
func NewRiderAssignment(riderID kernel.UUID, name, email string) (RiderAssignment, error) {
	var assignErr error
	if err := riderID.Validate(); err != nil {
		assignErr = errors.Join(assignErr, err)
	}
	if name == "" {
		assignErr = errors.Join(assignErr, ErrRiderNameIsRequired)
	}
	if email == "" {
		assignErr = errors.Join(assignErr, ErrRiderEmailIsRequired)
	}
	if assignErr != nil {
		return RiderAssignment{}, assignErr
	}

	return RiderAssignment{riderID: riderID, name: name, email: email}, nil
}

// RiderID returns the assigned rider's identifier.
func (a RiderAssignment) RiderID() kernel.UUID {
	return a.riderID
}

// Name returns the assigned rider's display name.
func (a RiderAssignment) Name() string {
	return a.name
}

// Email returns the assigned rider's email.
func (a RiderAssignment) Email() string {
	return a.email
}

// Validate rejects the zero value.
func (a RiderAssignment) Validate() error {
	if err := a.riderID.Validate(); err != nil {
		return err
	}
	if a.name == "" {
		return ErrRiderNameIsRequired
	}
	if a.email == "" {
		return ErrRiderEmailIsRequired
	}
	return nil
}
