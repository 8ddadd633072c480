package cmd

import (
	"log/slog"
	"time"

	"zapship/internal/adapters/out/postgres"
	rediscache "zapship/internal/adapters/out/redis"
	"zapship/internal/core/application/usecases/commands"
	"zapship/internal/core/application/usecases/queries"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const defaultEarningsCacheTTL = 5 * time.Minute

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	earningsCache queries.EarningsReportCache
	logger        *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *goredis.Client, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}

	if redisClient != nil {
		ttl := defaultEarningsCacheTTL
		if config.EarningsCacheTTL != "" {
			if parsed, err := time.ParseDuration(config.EarningsCacheTTL); err == nil {
				ttl = parsed
			}
		}
		root.earningsCache = rediscache.NewEarningsReportCache(redisClient, ttl, logger)
	}

	return root
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRiderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCashOutParcelCommandHandler() commands.CashOutParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCashOutParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkParcelPaidCommandHandler() commands.MarkParcelPaidCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkParcelPaidCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitRiderApplicationCommandHandler() commands.SubmitRiderApplicationCommandHandler {
	var f commands.ApplicationUoWFactory = FuncApplicationUoWFactory(func() commands.ApplicationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitRiderApplicationCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveRiderApplicationCommandHandler() commands.ApproveRiderApplicationCommandHandler {
	var f commands.OnboardingUoWFactory = FuncOnboardingUoWFactory(func() commands.OnboardingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveRiderApplicationCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateGetRiderEarningsQueryHandler() queries.GetRiderEarningsQueryHandler {
	return queries.NewGetRiderEarningsQueryHandler(c.gormDB, c.earningsCache, c.logger)
}

func (c *CompositionRoot) CreateTrackParcelQueryHandler() queries.TrackParcelQueryHandler {
	return queries.NewTrackParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelsByCreatorQueryHandler() queries.GetParcelsByCreatorQueryHandler {
	return queries.NewGetParcelsByCreatorQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignableParcelsQueryHandler() queries.GetAssignableParcelsQueryHandler {
	return queries.NewGetAssignableParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableRidersQueryHandler() queries.GetAvailableRidersQueryHandler {
	return queries.NewGetAvailableRidersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingApplicationsQueryHandler() queries.GetPendingApplicationsQueryHandler {
	return queries.NewGetPendingApplicationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPaymentHistoryQueryHandler() queries.GetPaymentHistoryQueryHandler {
	return queries.NewGetPaymentHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingCashoutTotalsQueryHandler() queries.GetPendingCashoutTotalsQueryHandler {
	return queries.NewGetPendingCashoutTotalsQueryHandler(c.gormDB)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncOnboardingUoWFactory func() commands.OnboardingUoW

func (f FuncOnboardingUoWFactory) Create() commands.OnboardingUoW {
	return f()
}

type FuncApplicationUoWFactory func() commands.ApplicationUoW

func (f FuncApplicationUoWFactory) Create() commands.ApplicationUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
