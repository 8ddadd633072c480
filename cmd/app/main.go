package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"zapship/cmd"
	httpin "zapship/internal/adapters/in/http"
	"zapship/internal/adapters/out/postgres/parcelrepo"
	"zapship/internal/adapters/out/postgres/paymentrepo"
	"zapship/internal/adapters/out/postgres/riderrepo"
	"zapship/internal/adapters/out/postgres/userrepo"
	"zapship/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	goredis "github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := connectDB(configs)
	redisClient := connectRedis(configs)

	root := cmd.NewCompositionRoot(configs, gormDB, redisClient, logger)

	jobManager := jobs.NewJobManager(root.CreateGetPendingCashoutTotalsQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:        goDotEnvVariable("REDIS_ADDR"),
		EarningsCacheTTL: goDotEnvVariable("EARNINGS_CACHE_TTL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&paymentrepo.PaymentDTO{},
		&riderrepo.RiderApplicationDTO{},
		&userrepo.UserDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

// connectRedis returns nil when no address is configured; the earnings
// report cache is optional and the service degrades to recomputing reports.
func connectRedis(configs cmd.Config) *goredis.Client {
	if configs.RedisAddr == "" {
		return nil
	}
	return goredis.NewClient(&goredis.Options{Addr: configs.RedisAddr})
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		root.CreateCreateParcelCommandHandler(),
		root.CreateAssignRiderCommandHandler(),
		root.CreateUpdateDeliveryStatusCommandHandler(),
		root.CreateMarkParcelPaidCommandHandler(),
		root.CreateCashOutParcelCommandHandler(),
		root.CreateSubmitRiderApplicationCommandHandler(),
		root.CreateApproveRiderApplicationCommandHandler(),
		root.CreateRegisterUserCommandHandler(),
		root.CreateGetRiderEarningsQueryHandler(),
		root.CreateTrackParcelQueryHandler(),
		root.CreateGetParcelsByCreatorQueryHandler(),
		root.CreateGetAssignableParcelsQueryHandler(),
		root.CreateGetAvailableRidersQueryHandler(),
		root.CreateGetPendingApplicationsQueryHandler(),
		root.CreateGetPaymentHistoryQueryHandler(),
		root.CreateGetPendingCashoutTotalsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
