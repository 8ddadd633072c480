package commands

import (
	"errors"

	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/pkg/errs"
	"zapship/internal/pkg/guard"
)

var ErrSubmitRiderApplicationCommandIsNotConstructed = errors.New(
	"SubmitRiderApplicationCommand must be created via NewSubmitRiderApplicationCommand constructor",
)

// SubmitRiderApplicationCommand files a new rider application. Applications
// start pending and wait for an admin review decision.
type SubmitRiderApplicationCommand struct { //nolint:recvcheck //using for validation
	applicationID kernel.UUID
	name          string
	email         string
	phone         string
	district      string
	region        kernel.Region

	guard guard.ConstructorGuard
}

// NewSubmitRiderApplicationCommand creates a command to file an application.
// Name, email and district are required; phone is optional.
func NewSubmitRiderApplicationCommand(
	applicationID kernel.UUID,
	name string,
	email string,
	phone string,
	district string,
	region kernel.Region,
) (SubmitRiderApplicationCommand, error) {
	cmd := SubmitRiderApplicationCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setApplicationID(applicationID),
		cmd.setApplicant(name, email),
		cmd.setDistrict(district),
		cmd.setRegion(region),
	); err != nil {
		return SubmitRiderApplicationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitRiderApplicationCommand) Validate() error {
	return c.guard.Validate(ErrSubmitRiderApplicationCommandIsNotConstructed)
}

// ApplicationID returns the identifier for the new application.
func (c SubmitRiderApplicationCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

// Name returns the applicant's name.
func (c SubmitRiderApplicationCommand) Name() string {
	return c.name
}

// Email returns the applicant's email.
func (c SubmitRiderApplicationCommand) Email() string {
	return c.email
}

// Phone returns the applicant's phone number, possibly empty.
func (c SubmitRiderApplicationCommand) Phone() string {
	return c.phone
}

// District returns the district the rider would serve.
func (c SubmitRiderApplicationCommand) District() string {
	return c.district
}

// Region returns the applicant's operational region.
func (c SubmitRiderApplicationCommand) Region() kernel.Region {
	return c.region
}

func (c *SubmitRiderApplicationCommand) setApplicationID(applicationID kernel.UUID) error {
	if err := applicationID.Validate(); err != nil {
		return err
	}

	c.applicationID = applicationID
	return nil
}

func (c *SubmitRiderApplicationCommand) setApplicant(name, email string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("applicant name")
	}
	if email == "" {
		return errs.NewValueIsRequiredError("applicant email")
	}

	c.name = name
	c.email = email
	return nil
}

func (c *SubmitRiderApplicationCommand) setDistrict(district string) error {
	if district == "" {
		return errs.NewValueIsRequiredError("district")
	}

	c.district = district
	return nil
}

func (c *SubmitRiderApplicationCommand) setRegion(region kernel.Region) error {
	if err := region.Validate(); err != nil {
		return err
	}

	c.region = region
	return nil
}
