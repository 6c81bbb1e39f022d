package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appControllers "github.com/longvh/admissions/internal/app/controllers"
	appMigrations "github.com/longvh/admissions/internal/app/migrations"
	appRepos "github.com/longvh/admissions/internal/app/repositories"
	appRoutes "github.com/longvh/admissions/internal/app/routes"
	appServices "github.com/longvh/admissions/internal/app/services"
	"github.com/longvh/admissions/internal/config"
	"github.com/longvh/admissions/internal/db"
	appMiddleware "github.com/longvh/admissions/internal/middleware"
	pkgAuth "github.com/longvh/admissions/internal/pkg/auth"
	"github.com/longvh/admissions/internal/pkg/helpers"
	"github.com/longvh/admissions/internal/pkg/logger"
	"github.com/longvh/admissions/internal/pkg/notification"
	"github.com/longvh/admissions/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services                   *appServices.Services
	ApplicationController      *appControllers.ApplicationController
	AdminApplicationController *appControllers.AdminApplicationController
	StatisticsController       *appControllers.StatisticsController
	SchoolController           *appControllers.SchoolController
	AuthMiddleware             *appMiddleware.AuthMiddleware
	Repos                      *appRepos.Repositories
	JWTService                 *pkgAuth.JWTService
	Notifier                   notification.StatusNotifier
	Logger                     zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Reference data and the default admin user are seeded idempotently.
	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 1*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.Notifier = notification.NewEmailNotifier(notification.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
	}, lgr)

	deps.Services = appServices.NewServices(deps.Repos, deps.Notifier, cfg.Frontend.BaseURL)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.ApplicationController = appControllers.NewApplicationController(deps.Services.ApplicationService)
	deps.AdminApplicationController = appControllers.NewAdminApplicationController(deps.Services.AdminApplicationService)
	deps.StatisticsController = appControllers.NewStatisticsController(deps.Services.StatisticsService)
	deps.SchoolController = appControllers.NewSchoolController(deps.Services.SchoolService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.ApplicationController,
		deps.AdminApplicationController,
		deps.StatisticsController,
		deps.SchoolController,
		deps.AuthMiddleware,
	)

	// Liveness endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
