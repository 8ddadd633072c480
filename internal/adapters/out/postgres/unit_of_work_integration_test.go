package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "zapship/internal/adapters/out/postgres"
	"zapship/internal/adapters/out/postgres/parcelrepo"
	"zapship/internal/adapters/out/postgres/paymentrepo"
	"zapship/internal/adapters/out/postgres/riderrepo"
	"zapship/internal/adapters/out/postgres/userrepo"
	"zapship/internal/core/domain/model/account"
	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/core/domain/model/parcel"
	"zapship/internal/core/domain/model/payment"
	"zapship/internal/core/domain/model/rider"
	"zapship/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a
// real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&paymentrepo.PaymentDTO{},
		&riderrepo.RiderApplicationDTO{},
		&userrepo.UserDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE parcels, payments, rider_applications, users").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// repeated begin is safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx), "commit without begin must fail")
	suite.Require().Error(uow.Rollback(ctx), "rollback without begin must fail")
}

// TestPaymentDualWrite verifies the MarkParcelPaid write pattern: the
// parcel status flip and the ledger insert land atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestPaymentDualWrite() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testParcel := suite.createTestParcel()

	err := uow.ParcelRepository().Add(ctx, testParcel)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	testParcel.MarkPaid()
	err = uow.ParcelRepository().Update(ctx, testParcel)
	suite.Require().NoError(err)

	entry, err := payment.NewPayment(
		kernel.NewUUID(), testParcel.ID(), 150, "tx-8841", "card",
		testParcel.CreatedByEmail(), time.Now().UTC(),
	)
	suite.Require().NoError(err)
	err = uow.PaymentRepository().Add(ctx, entry)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	stored, err := newUow.ParcelRepository().Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.Paid, stored.PaymentStatus())

	storedPayment, err := newUow.PaymentRepository().GetByParcelID(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Equal("tx-8841", storedPayment.TransactionID())
}

// TestPaymentDualWriteRollback verifies a rolled-back settlement leaves
// both the parcel and the ledger untouched.
func (suite *UnitOfWorkIntegrationTestSuite) TestPaymentDualWriteRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testParcel := suite.createTestParcel()

	err := uow.ParcelRepository().Add(ctx, testParcel)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	testParcel.MarkPaid()
	err = uow.ParcelRepository().Update(ctx, testParcel)
	suite.Require().NoError(err)

	entry, err := payment.NewPayment(
		kernel.NewUUID(), testParcel.ID(), 150, "tx-8842", "card",
		testParcel.CreatedByEmail(), time.Now().UTC(),
	)
	suite.Require().NoError(err)
	err = uow.PaymentRepository().Add(ctx, entry)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	stored, err := newUow.ParcelRepository().Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.Unpaid, stored.PaymentStatus())

	_, err = newUow.PaymentRepository().GetByParcelID(ctx, testParcel.ID())
	suite.Require().Error(err, "ledger entry must not survive rollback")
}

// TestRiderOnboardingWorkflow verifies the approval write pattern: the
// application flip and the user promotion land in one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestRiderOnboardingWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	application := suite.createTestApplication()
	err := uow.RiderApplicationRepository().Add(ctx, application)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = application.ChangeApplicationStatus(rider.ApplicationActive)
	suite.Require().NoError(err)
	err = uow.RiderApplicationRepository().Update(ctx, application)
	suite.Require().NoError(err)

	user, err := account.NewUser(application.Email(), time.Now().UTC())
	suite.Require().NoError(err)
	err = user.ChangeRole(account.RoleRider)
	suite.Require().NoError(err)
	err = uow.UserRepository().Upsert(ctx, user)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	storedApp, err := newUow.RiderApplicationRepository().GetByEmail(ctx, application.Email())
	suite.Require().NoError(err)
	suite.True(storedApp.IsActive())

	storedUser, err := newUow.UserRepository().GetByEmail(ctx, application.Email())
	suite.Require().NoError(err)
	suite.Equal(account.RoleRider, storedUser.Role())
}

// TestUserUpsertIsReplaySafe verifies repeated upserts keep one row and
// refresh the login stamp.
func (suite *UnitOfWorkIntegrationTestSuite) TestUserUpsertIsReplaySafe() {
	ctx := context.Background()
	uow := suite.factory.Create()

	first := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
	user, err := account.NewUser("repeat@example.com", first)
	suite.Require().NoError(err)

	err = uow.UserRepository().Upsert(ctx, user)
	suite.Require().NoError(err)

	user.RecordLogin(first.Add(24 * time.Hour))
	err = uow.UserRepository().Upsert(ctx, user)
	suite.Require().NoError(err)

	stored, err := uow.UserRepository().GetByEmail(ctx, "repeat@example.com")
	suite.Require().NoError(err)
	suite.True(stored.LastLoginAt().After(first))

	var count int64
	err = suite.db.Table("users").Count(&count).Error
	suite.Require().NoError(err)
	suite.EqualValues(1, count)
}

// TestRepositoryIsolation verifies transactions from separate unit of work
// instances do not see each other's uncommitted changes.
func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	parcel1 := suite.createTestParcel()
	parcel2 := suite.createTestParcel()

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.ParcelRepository().Add(ctx, parcel1))
	suite.Require().NoError(uow2.ParcelRepository().Add(ctx, parcel2))

	_, err := uow1.ParcelRepository().Get(ctx, parcel2.ID())
	suite.Require().Error(err, "uow1 must not see uow2's uncommitted parcel")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.ParcelRepository().Get(ctx, parcel1.ID())
	suite.Require().NoError(err, "committed parcel must persist")

	_, err = newUow.ParcelRepository().Get(ctx, parcel2.ID())
	suite.Require().Error(err, "rolled-back parcel must not persist")
}

// TestConcurrentTransitionsDoNotRegressCashout verifies the row lock taken by
// the parcel repository's Get: a status transition that starts while a
// cash-out transaction holds the row waits for that commit and then reads the
// settled state, instead of writing back a stale pending cashout.
func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentTransitionsDoNotRegressCashout() {
	ctx := context.Background()

	testParcel := suite.createTestParcel()
	testParcel.MarkPaid()
	assignment, err := parcel.NewRiderAssignment(kernel.NewUUID(), "Rafiq", "rafiq@example.com")
	suite.Require().NoError(err)
	suite.Require().NoError(testParcel.AssignRider(assignment))
	suite.Require().NoError(testParcel.ChangeDeliveryStatus(parcel.Delivered, time.Now().UTC()))

	setup := suite.factory.Create()
	suite.Require().NoError(setup.ParcelRepository().Add(ctx, testParcel))

	cashOutUow := suite.factory.Create()
	suite.Require().NoError(cashOutUow.Begin(ctx))

	locked, err := cashOutUow.ParcelRepository().Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(locked.CashOut(time.Now().UTC()))
	suite.Require().NoError(cashOutUow.ParcelRepository().Update(ctx, locked))

	transitionDone := make(chan error, 1)
	go func() {
		transitionUow := suite.factory.Create()
		if err := transitionUow.Begin(ctx); err != nil {
			transitionDone <- err
			return
		}

		// blocks on the row lock until the cash-out transaction commits
		current, err := transitionUow.ParcelRepository().Get(ctx, testParcel.ID())
		if err != nil {
			transitionDone <- err
			return
		}
		if err := current.ChangeDeliveryStatus(parcel.ServiceCenterDelivered, time.Now().UTC()); err != nil {
			transitionDone <- err
			return
		}
		if err := transitionUow.ParcelRepository().Update(ctx, current); err != nil {
			transitionDone <- err
			return
		}
		transitionDone <- transitionUow.Commit(ctx)
	}()

	// let the competing transaction reach its locked read before committing
	time.Sleep(200 * time.Millisecond)
	suite.Require().NoError(cashOutUow.Commit(ctx))
	suite.Require().NoError(<-transitionDone)

	verify := suite.factory.Create()
	stored, err := verify.ParcelRepository().Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.CashedOut, stored.CashoutStatus(), "settled cashout must survive the competing transition")
	suite.Require().NotNil(stored.CashedOutAt())
	suite.Equal(parcel.ServiceCenterDelivered, stored.DeliveryStatus())
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestParcel() *parcel.Parcel {
	sender, err := kernel.NewRegion("Dhaka")
	suite.Require().NoError(err)
	receiver, err := kernel.NewRegion("Sylhet")
	suite.Require().NoError(err)

	cost := 150.0
	testParcel, err := parcel.NewParcel(
		kernel.NewUUID(),
		"ZS-"+kernel.NewUUID().String()[:8],
		"Documents",
		"sender@example.com",
		sender,
		receiver,
		"Dhaka Hub",
		&cost,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return testParcel
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestApplication() *rider.RiderApplication {
	region, err := kernel.NewRegion("Dhaka")
	suite.Require().NoError(err)

	application, err := rider.NewRiderApplication(
		kernel.NewUUID(),
		"Rahim",
		"rahim-"+kernel.NewUUID().String()[:8]+"@example.com",
		"+880170000000",
		"Mirpur",
		region,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return application
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
