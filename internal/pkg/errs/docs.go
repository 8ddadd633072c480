// Package errs provides the standardized error types used across the parcel
// backend. Every failure a use case can surface falls into one of a small set
// of categories, each with a sentinel error and a struct type:
//
//   - ObjectNotFoundError: a referenced parcel, application or user is absent
//   - ValueIsInvalidError: a value is present but malformed
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsOutOfRangeError: a value lies outside its allowed bounds
//   - ForbiddenError: the caller's capability lacks the required role
//   - PartialWriteError: a multi-entity write landed only in part
//
// Each type follows the same pattern: a sentinel error variable (e.g.
// ErrObjectNotFound), constructors with and without a cause, an Error()
// rendering, and Unwrap() returning the sentinel so errors.Is classifies
// any instance. The HTTP adapter maps these categories onto status codes;
// inside the core they are the whole contract.
package errs
