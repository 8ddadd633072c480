// Package rider contains the RiderApplication aggregate: the record a
// would-be rider files, the admin review states it moves through, and the
// work status used for dispatch once the rider is active.
package rider

import (
	"errors"
	"time"

	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/pkg/errs"
	"zapship/internal/pkg/guard"
)

// Domain errors for rider applications.
var (
	ErrApplicationIsNotConstructed = errors.New("RiderApplication must be created via NewRiderApplication or RestoreRiderApplication")
	ErrApplicantNameIsRequired     = errs.NewValueIsRequiredError("applicant name")
	ErrApplicantEmailIsRequired    = errs.NewValueIsRequiredError("applicant email")
	ErrDistrictIsRequired          = errs.NewValueIsRequiredError("district")
)

// RiderApplication is the aggregate for rider onboarding. An application is
// filed pending, reviewed by an admin, and once active the applicant's user
// record is promoted to the rider role (a cross-entity effect owned by the
// approval use case, not by this aggregate).
type RiderApplication struct {
	id                kernel.UUID
	name              string
	email             string
	phone             string
	district          string
	region            kernel.Region
	applicationStatus ApplicationStatus
	workStatus        WorkStatus
	appliedAt         time.Time

	guard guard.ConstructorGuard
}

// NewRiderApplication creates a pending application for the given applicant.
// District drives dispatch matching, so it is required; phone is not.
func NewRiderApplication(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	district string,
	region kernel.Region,
	appliedAt time.Time,
) (*RiderApplication, error) {
	a := &RiderApplication{
		phone:             phone,
		applicationStatus: ApplicationPending,
		workStatus:        WorkAvailable,
		appliedAt:         appliedAt,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setApplicant(name, email),
		a.setDistrict(district),
		a.setRegion(region),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreRiderApplication reconstructs an application from persistence.
func RestoreRiderApplication(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	district string,
	region kernel.Region,
	applicationStatus ApplicationStatus,
	workStatus WorkStatus,
	appliedAt time.Time,
) (*RiderApplication, error) {
	a := &RiderApplication{
		phone:     phone,
		appliedAt: appliedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setApplicant(name, email),
		a.setDistrict(district),
		a.setRegion(region),
		applicationStatus.Validate(),
		workStatus.Validate(),
	); err != nil {
		return nil, err
	}

	a.applicationStatus = applicationStatus
	a.workStatus = workStatus
	return a, nil
}

// Validate ensures the application was created through a constructor.
func (a *RiderApplication) Validate() error {
	if a == nil {
		return ErrApplicationIsNotConstructed
	}
	return a.guard.Validate(ErrApplicationIsNotConstructed)
}

// ID returns the application identifier.
func (a *RiderApplication) ID() kernel.UUID { return a.id }

// Name returns the applicant's name.
func (a *RiderApplication) Name() string { return a.name }

// Email returns the applicant's email.
func (a *RiderApplication) Email() string { return a.email }

// Phone returns the applicant's phone number, possibly empty.
func (a *RiderApplication) Phone() string { return a.phone }

// District returns the district the rider would serve.
func (a *RiderApplication) District() string { return a.district }

// Region returns the applicant's operational region.
func (a *RiderApplication) Region() kernel.Region { return a.region }

// ApplicationStatus returns the review state.
func (a *RiderApplication) ApplicationStatus() ApplicationStatus { return a.applicationStatus }

// WorkStatus returns the dispatch availability state.
func (a *RiderApplication) WorkStatus() WorkStatus { return a.workStatus }

// AppliedAt returns when the application was filed.
func (a *RiderApplication) AppliedAt() time.Time { return a.appliedAt }

// IsActive reports whether the rider is onboarded.
func (a *RiderApplication) IsActive() bool {
	return a.applicationStatus == ApplicationActive
}

// ChangeApplicationStatus moves the application to the given review state.
func (a *RiderApplication) ChangeApplicationStatus(status ApplicationStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.applicationStatus = status
	return nil
}

// ChangeWorkStatus updates the rider's dispatch availability.
func (a *RiderApplication) ChangeWorkStatus(status WorkStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.workStatus = status
	return nil
}

func (a *RiderApplication) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *RiderApplication) setApplicant(name, email string) error {
	if name == "" {
		return ErrApplicantNameIsRequired
	}
	if email == "" {
		return ErrApplicantEmailIsRequired
	}
	a.name = name
	a.email = email
	return nil
}

func (a *RiderApplication) setDistrict(district string) error {
	if district == "" {
		return ErrDistrictIsRequired
	}
	a.district = district
	return nil
}

func (a *RiderApplication) setRegion(region kernel.Region) error {
	if err := region.Validate(); err != nil {
		return err
	}
	a.region = region
	return nil
}
