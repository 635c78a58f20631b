package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"assistance/cmd"
	"assistance/internal/adapters/out/postgres/contractrepo"
	"assistance/internal/adapters/out/postgres/orderrepo"
	"assistance/internal/adapters/out/postgres/sagarepo"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config, err := getConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	gormDB, err := openDatabase(config)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(config, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	jobManager := app.CreateJobManager(config.DriverResponseTimeout)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	e := echo.New()
	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}

func getConfig() (cmd.Config, error) {
	// Missing .env is fine in containerized deployments where the
	// environment is injected directly.
	_ = godotenv.Load(".env")

	responseTimeout, err := time.ParseDuration(envOrDefault("DRIVER_RESPONSE_TIMEOUT", "5m"))
	if err != nil {
		return cmd.Config{}, fmt.Errorf("parse DRIVER_RESPONSE_TIMEOUT: %w", err)
	}

	return cmd.Config{
		HTTPPort:              envOrDefault("HTTP_PORT", "8080"),
		DBHost:                os.Getenv("DB_HOST"),
		DBPort:                envOrDefault("DB_PORT", "5432"),
		DBUser:                os.Getenv("DB_USER"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBName:                os.Getenv("DB_NAME"),
		DBSslMode:             envOrDefault("DB_SSLMODE", "disable"),
		DriverProviderURL:     os.Getenv("DRIVER_PROVIDER_URL"),
		GeocoderURL:           os.Getenv("GEOCODER_URL"),
		NotifierURL:           os.Getenv("NOTIFIER_URL"),
		DriverResponseTimeout: responseTimeout,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ExtraCostDTO{},
		&contractrepo.ContractDTO{},
		&sagarepo.SagaDTO{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return gormDB, nil
}
