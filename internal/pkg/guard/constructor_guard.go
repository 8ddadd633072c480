// Package guard provides the ConstructorGuard pattern used by commands,
// queries and aggregates to reject zero-value instances that bypassed
// their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// designated constructor. Embed it as a private field and set it with
// NewConstructorGuard inside the constructor; a zero-value instance of the
// owning struct then fails Validate.
//
// Example:
//
//	type CashOutParcelCommand struct {
//	    parcelID kernel.UUID
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewCashOutParcelCommand(id kernel.UUID) (CashOutParcelCommand, error) {
//	    ...
//	    return CashOutParcelCommand{parcelID: id, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CashOutParcelCommand) Validate() error {
//	    return c.guard.Validate(ErrCashOutParcelCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was properly constructed.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
