// Package bootstrap wires configuration, database, services and routes.
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
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/wkalungi/sponsorbase/internal/app/controllers"
	"github.com/wkalungi/sponsorbase/internal/app/importer"
	appMigrations "github.com/wkalungi/sponsorbase/internal/app/migrations"
	appRepos "github.com/wkalungi/sponsorbase/internal/app/repositories"
	appRoutes "github.com/wkalungi/sponsorbase/internal/app/routes"
	appServices "github.com/wkalungi/sponsorbase/internal/app/services"
	"github.com/wkalungi/sponsorbase/internal/config"
	"github.com/wkalungi/sponsorbase/internal/db"
	appMiddleware "github.com/wkalungi/sponsorbase/internal/middleware"
	pkgAuth "github.com/wkalungi/sponsorbase/internal/pkg/auth"
	"github.com/wkalungi/sponsorbase/internal/pkg/filestorage"
	"github.com/wkalungi/sponsorbase/internal/pkg/helpers"
	"github.com/wkalungi/sponsorbase/internal/pkg/logger"
	"github.com/wkalungi/sponsorbase/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           appServices.AuthService
	ChildService          appServices.ChildService
	SponsorService        appServices.SponsorService
	StaffService          appServices.StaffService
	SponsorshipService    appServices.SponsorshipService
	DashboardService      appServices.DashboardService
	Importer              *importer.Importer
	AuthController        *appControllers.AuthController
	ChildController       *appControllers.ChildController
	SponsorController     *appControllers.SponsorController
	StaffController       *appControllers.StaffController
	SponsorshipController *appControllers.SponsorshipController
	DashboardController   *appControllers.DashboardController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	Logger                zerolog.Logger
	FileStorage           *filestorage.LocalStorage
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
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

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService)
	deps.ChildService = appServices.NewChildService(deps.Repos.ChildRepository)
	deps.SponsorService = appServices.NewSponsorService(database, deps.Repos.SponsorRepository)
	deps.StaffService = appServices.NewStaffService(deps.Repos.StaffRepository)
	deps.SponsorshipService = appServices.NewSponsorshipService(deps.Repos.SponsorshipRepository)
	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.ChildRepository,
		deps.Repos.SponsorRepository,
		deps.Repos.StaffRepository,
		deps.Repos.SponsorshipRepository,
	)

	deps.Importer = importer.New(database, deps.Repos.ChildRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	maxImportBytes := int64(cfg.Import.MaxFileSizeMB) * 1024 * 1024
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.JWTService)
	deps.ChildController = appControllers.NewChildController(deps.ChildService, deps.Importer, deps.FileStorage, maxImportBytes)
	deps.SponsorController = appControllers.NewSponsorController(deps.SponsorService)
	deps.StaffController = appControllers.NewStaffController(deps.StaffService)
	deps.SponsorshipController = appControllers.NewSponsorshipController(deps.SponsorshipService)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)

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

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ChildController,
		deps.SponsorController,
		deps.StaffController,
		deps.SponsorshipController,
		deps.DashboardController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
