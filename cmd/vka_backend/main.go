package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"cloud.google.com/go/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/vendorkhata/vendor_khata_app/internal/core/services"
	"github.com/vendorkhata/vendor_khata_app/internal/events/kafka"
	"github.com/vendorkhata/vendor_khata_app/internal/handlers"
	"github.com/vendorkhata/vendor_khata_app/internal/middleware"
	"github.com/vendorkhata/vendor_khata_app/internal/platform/config"
	"github.com/vendorkhata/vendor_khata_app/internal/repositories/database/pgsql"
	"github.com/vendorkhata/vendor_khata_app/internal/utils"
	"github.com/vendorkhata/vendor_khata_app/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Vendor Khata API
// @version 1.0
// @description Backend API for tracking vendor purchases, payments and running balances per branch.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to run database migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Optional Kafka audit event publisher. Fall back to a no-op when no
	// brokers are configured so local setups run without Kafka.
	containerDeps := services.ContainerDeps{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaAuditTopic)
		defer func() {
			if cerr := publisher.Close(); cerr != nil {
				logger.Error("Error closing kafka publisher", slog.String("error", cerr.Error()))
			}
		}()
		containerDeps.Events = publisher
		logger.Info("Kafka audit publisher initialized", slog.String("topic", cfg.KafkaAuditTopic))
	}

	// Optional GCS client for purchase photo uploads.
	if cfg.GCSBucketName != "" {
		storageClient, err := storage.NewClient(ctx)
		if err != nil {
			logger.Error("Failed to initialize GCS client", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer storageClient.Close()
		containerDeps.StorageClient = storageClient
		logger.Info("GCS storage client initialized", slog.String("bucket", cfg.GCSBucketName))
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, analytics)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.Default(),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, containerDeps)

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations using a temporary
// database/sql connection via the pgx stdlib driver.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
