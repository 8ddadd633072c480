package commands_test

import (
	"context"
	"testing"
	"time"

	"zapship/internal/core/application/usecases/commands"
	"zapship/internal/core/domain/model/account"
	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/core/domain/model/parcel"
	"zapship/internal/core/domain/model/payment"
	"zapship/internal/core/domain/model/rider"
	"zapship/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByParcelID(ctx context.Context, parcelID kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

type MockRiderApplicationRepository struct{ mock.Mock }

func (m *MockRiderApplicationRepository) Add(ctx context.Context, a *rider.RiderApplication) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockRiderApplicationRepository) Update(ctx context.Context, a *rider.RiderApplication) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockRiderApplicationRepository) Get(ctx context.Context, id kernel.UUID) (*rider.RiderApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.RiderApplication), args.Error(1)
}

func (m *MockRiderApplicationRepository) GetByEmail(ctx context.Context, email string) (*rider.RiderApplication, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.RiderApplication), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Upsert(ctx context.Context, u *account.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*account.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockParcelUoW struct{ mockTx }

func (m *MockParcelUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockPaymentUoW struct{ mockTx }

func (m *MockPaymentUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockPaymentUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentUoW)
}

type MockOnboardingUoW struct{ mockTx }

func (m *MockOnboardingUoW) RiderApplicationRepository() ports.RiderApplicationRepository {
	args := m.Called()
	return args.Get(0).(ports.RiderApplicationRepository)
}

func (m *MockOnboardingUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockOnboardingUoWFactory struct{ mock.Mock }

func (m *MockOnboardingUoWFactory) Create() commands.OnboardingUoW {
	args := m.Called()
	return args.Get(0).(commands.OnboardingUoW)
}

type MockApplicationUoW struct{ mockTx }

func (m *MockApplicationUoW) RiderApplicationRepository() ports.RiderApplicationRepository {
	args := m.Called()
	return args.Get(0).(ports.RiderApplicationRepository)
}

type MockApplicationUoWFactory struct{ mock.Mock }

func (m *MockApplicationUoWFactory) Create() commands.ApplicationUoW {
	args := m.Called()
	return args.Get(0).(commands.ApplicationUoW)
}

type MockUserUoW struct{ mockTx }

func (m *MockUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

// Test fixtures shared by handler tests.

func adminCaller(t *testing.T) account.Caller {
	t.Helper()
	caller, err := account.NewCaller("admin@example.com", account.RoleAdmin)
	require.NoError(t, err)
	return caller
}

func riderCaller(t *testing.T) account.Caller {
	t.Helper()
	caller, err := account.NewCaller("rider@example.com", account.RoleRider)
	require.NoError(t, err)
	return caller
}

func plainCaller(t *testing.T) account.Caller {
	t.Helper()
	caller, err := account.NewCaller("user@example.com", account.RoleUser)
	require.NoError(t, err)
	return caller
}

func mustRegion(t *testing.T, name string) kernel.Region {
	t.Helper()
	region, err := kernel.NewRegion(name)
	require.NoError(t, err)
	return region
}

func newParcelFixture(t *testing.T, status parcel.DeliveryStatus) *parcel.Parcel {
	t.Helper()
	cost := 120.0
	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		"ZS-1001",
		"Documents",
		"sender@example.com",
		mustRegion(t, "Dhaka"),
		mustRegion(t, "Dhaka"),
		"Dhaka Hub",
		&cost,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	if status != parcel.NotCollected {
		require.NoError(t, p.ChangeDeliveryStatus(status, time.Now().UTC()))
	}
	return p
}

func newApplicationFixture(t *testing.T) *rider.RiderApplication {
	t.Helper()
	a, err := rider.NewRiderApplication(
		kernel.NewUUID(),
		"Rahim",
		"rahim@example.com",
		"+880170000000",
		"Mirpur",
		mustRegion(t, "Dhaka"),
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return a
}
