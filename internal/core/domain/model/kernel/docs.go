// Package kernel contains the shared value objects of the domain model:
// UUID identity and the operational Region. These types carry no behavior
// beyond construction, validation and equality; aggregates build on them.
package kernel
