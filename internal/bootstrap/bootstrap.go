package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fergood-2703/SIA-FCP/internal/app/controllers"
	"github.com/fergood-2703/SIA-FCP/internal/app/migrations"
	"github.com/fergood-2703/SIA-FCP/internal/app/repositories"
	"github.com/fergood-2703/SIA-FCP/internal/app/routes"
	"github.com/fergood-2703/SIA-FCP/internal/app/services"
	"github.com/fergood-2703/SIA-FCP/internal/config"
	"github.com/fergood-2703/SIA-FCP/internal/db"
	"github.com/fergood-2703/SIA-FCP/internal/middleware"
	"github.com/fergood-2703/SIA-FCP/internal/pkg/helpers"
	"github.com/fergood-2703/SIA-FCP/internal/pkg/logger"
	"github.com/fergood-2703/SIA-FCP/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services            *services.Services
	AreaController      *controllers.AreaController
	CareerController    *controllers.CareerController
	CourseController    *controllers.CourseController
	TeacherController   *controllers.TeacherController
	StudentController   *controllers.StudentController
	DashboardController *controllers.DashboardController
	AssistantController *controllers.AssistantController
	Repos               *repositories.Repositories
	Logger              zerolog.Logger
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
// seeds the default data.
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
	migrator := migrations.NewMigrator(dbPool)

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

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = repositories.NewRepositories(dbPool)

	webhookTimeout := helpers.ParseDuration(cfg.Assistant.Timeout, 30*time.Second)
	deps.Services = services.NewServices(deps.Repos, cfg.Assistant.WebhookURL, webhookTimeout)

	deps.AreaController = controllers.NewAreaController(deps.Services.Area)
	deps.CareerController = controllers.NewCareerController(deps.Services.Career)
	deps.CourseController = controllers.NewCourseController(deps.Services.Course)
	deps.TeacherController = controllers.NewTeacherController(deps.Services.Teacher)
	deps.StudentController = controllers.NewStudentController(deps.Services.Student)
	deps.DashboardController = controllers.NewDashboardController(deps.Services.Dashboard)
	deps.AssistantController = controllers.NewAssistantController(deps.Services.Assistant)

	return deps, nil
}

// SetupRouter configures the gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())

	routes.SetupRouter(
		router,
		deps.AreaController,
		deps.CareerController,
		deps.CourseController,
		deps.TeacherController,
		deps.StudentController,
		deps.DashboardController,
		deps.AssistantController,
	)

	lgr.Info().Msg("Router configured")
	return router
}
