// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"zapship/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// PaymentRepoFactory provides access to the payment ledger within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// RiderApplicationRepoFactory provides access to rider applications within a transaction.
	RiderApplicationRepoFactory interface {
		RiderApplicationRepository() ports.RiderApplicationRepository
	}

	// UserRepoFactory provides access to the user registry within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// ParcelUoW manages transactions for parcel-only operations.
	// Used by commands that move a single parcel through its lifecycle.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// PaymentUoW manages the dual write of payment settlement: the parcel
	// status flip and the ledger insert must land in one transaction.
	PaymentUoW interface {
		TxManager
		ParcelRepoFactory
		PaymentRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// OnboardingUoW manages transactions spanning rider applications and the
	// user registry. Approval promotes the applicant's user record in the
	// same transaction that flips the application status.
	OnboardingUoW interface {
		TxManager
		RiderApplicationRepoFactory
		UserRepoFactory
	}

	// OnboardingUoWFactory creates new onboarding unit of work instances.
	OnboardingUoWFactory interface {
		Create() OnboardingUoW
	}

	// ApplicationUoW manages transactions for application-only operations.
	ApplicationUoW interface {
		TxManager
		RiderApplicationRepoFactory
	}

	// ApplicationUoWFactory creates new application unit of work instances.
	ApplicationUoWFactory interface {
		Create() ApplicationUoW
	}

	// UserUoW manages transactions for user-registry-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}
)
