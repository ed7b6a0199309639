package main

import (
	"fmt"
	"net/http"
	"os"

	"mandi/cmd"
	httpserver "mandi/internal/adapters/in/http"
	"mandi/internal/adapters/out/postgres"
	"mandi/internal/adapters/out/postgres/entryrepo"
	"mandi/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create logger:", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck //stderr sync failure is not actionable

	configs := getConfigs(logger)

	gormDB, err := openDB(configs)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err = migrateDB(gormDB); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(app.CreateGetIncompleteOffersQueryHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		logger.Fatal("failed to start jobs", zap.Error(err))
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs(logger *zap.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Fatal("error loading .env file", zap.Error(err))
	}

	return cmd.Config{
		HTTPPort:   os.Getenv("HTTP_PORT"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  os.Getenv("DB_SSLMODE"),
	}
}

func openDB(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)
	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
}

func migrateDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&entryrepo.EntryDTO{},
		&entryrepo.GradingDTO{},
		&entryrepo.CookingDTO{},
		&entryrepo.OfferDTO{},
		&entryrepo.OfferFieldDTO{},
		&entryrepo.AllotmentDTO{},
		&entryrepo.TripDTO{},
		&entryrepo.WeightRecordDTO{},
		&entryrepo.SettlementDTO{},
		&postgres.VarietyDTO{},
	)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpserver.NewServer(
		app.CreateCreateEntryCommandHandler(),
		app.CreateAttachGradingCommandHandler(),
		app.CreateUpdateGradingCommandHandler(),
		app.CreateDecideCommandHandler(),
		app.CreateAttachCookingCommandHandler(),
		app.CreateSetOfferCommandHandler(),
		app.CreateFillMissingCommandHandler(),
		app.CreateAssignSupervisorCommandHandler(),
		app.CreateRecordTripCommandHandler(),
		app.CreateRecordWeightCommandHandler(),
		app.CreateCloseLotCommandHandler(),
		app.CreateSettleOwnerCommandHandler(),
		app.CreateSettleManagerCommandHandler(),
		app.CreateApproveReviewCommandHandler(),
		app.CreateGetEntryProgressQueryHandler(),
		app.CreateGetIncompleteOffersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
