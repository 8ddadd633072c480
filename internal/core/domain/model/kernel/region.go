package kernel

import "zapship/internal/pkg/errs"

// ErrRegionIsRequired is returned when constructing a Region from an empty string.
var ErrRegionIsRequired = errs.NewValueIsRequiredError("region")

// Region identifies the operational region a parcel is sent from or delivered
// to. The pair of sender and receiver regions drives the rider fee split:
// a delivery completed inside one region pays the rider a larger share than
// one handed off across regions.
//
// Region is a value object: immutable, compared by value.
type Region struct {
	name string
}

// NewRegion creates a Region from its name. The name must be non-empty;
// no further vocabulary is enforced because regions are operator-defined.
func NewRegion(name string) (Region, error) {
	if name == "" {
		return Region{}, ErrRegionIsRequired
	}
	return Region{name: name}, nil
}

// String returns the region name.
func (r Region) String() string {
	return r.name
}

// IsEqual reports whether two regions are the same. Used to decide between
// the intra-region and inter-region earning split.
func (r Region) IsEqual(other Region) bool {
	return r.name == other.name
}

// Validate rejects the zero value.
func (r Region) Validate() error {
	if r.name == "" {
		return ErrRegionIsRequired
	}
	return nil
}
