package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/sujeet/alumnisphere/internal/app/auth"
	appControllers "github.com/sujeet/alumnisphere/internal/app/controllers"
	appMigrations "github.com/sujeet/alumnisphere/internal/app/migrations"
	appRepos "github.com/sujeet/alumnisphere/internal/app/repositories"
	appRoutes "github.com/sujeet/alumnisphere/internal/app/routes"
	appServices "github.com/sujeet/alumnisphere/internal/app/services"
	"github.com/sujeet/alumnisphere/internal/config"
	"github.com/sujeet/alumnisphere/internal/db"
	appMiddleware "github.com/sujeet/alumnisphere/internal/middleware"
	pkgAuth "github.com/sujeet/alumnisphere/internal/pkg/auth"
	"github.com/sujeet/alumnisphere/internal/pkg/filestorage"
	"github.com/sujeet/alumnisphere/internal/pkg/helpers"
	"github.com/sujeet/alumnisphere/internal/pkg/logger"
	"github.com/sujeet/alumnisphere/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService        *appServices.AuthService
	CollegeService     *appServices.CollegeService
	UserService        *appServices.UserService
	PostService        *appServices.PostService
	CommentService     *appServices.CommentService
	EventService       *appServices.EventService
	DonationService    *appServices.DonationService
	SearchService      *appServices.SearchService
	AdminService       *appServices.AdminService
	AuthController     *appControllers.AuthController
	CollegeController  *appControllers.CollegeController
	UserController     *appControllers.UserController
	PostController     *appControllers.PostController
	EventController    *appControllers.EventController
	DonationController *appControllers.DonationController
	AdminController    *appControllers.AdminController
	AuthMiddleware     *appMiddleware.AuthMiddleware
	Repos              *appRepos.Repositories
	JWTService         *pkgAuth.JWTService
	AuthzService       *appAuth.AuthorizationService
	Logger             zerolog.Logger
	FileStorage        *filestorage.LocalStorage
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
		Level:      logLevel,
		Pretty:     prettyLog,
		FilePath:   cfg.Logging.FilePath,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// optionally seeds default data.
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

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// The base URL must match the static file serving endpoint
	var err error
	fileStorageBaseURL := strings.TrimRight(cfg.Server.BaseURL, "/") + "/uploads"
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.AuthzService = appAuth.NewAuthorizationService()

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.RefreshTokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.CollegeService = appServices.NewCollegeService(
		dbPool,
		deps.Repos.CollegeRepository,
		deps.Repos.UserRepository,
		lgr,
	)
	deps.UserService = appServices.NewUserService(
		deps.Repos.UserRepository,
		deps.Repos.UserFollowRepository,
		deps.AuthzService,
		deps.FileStorage,
		lgr,
	)
	deps.PostService = appServices.NewPostService(
		deps.Repos.PostRepository,
		deps.Repos.PostLikeRepository,
		deps.Repos.CommentRepository,
		deps.Repos.UserRepository,
		deps.AuthzService,
		deps.FileStorage,
		lgr,
	)
	deps.CommentService = appServices.NewCommentService(
		deps.Repos.CommentRepository,
		deps.Repos.PostRepository,
		deps.Repos.UserRepository,
		deps.AuthzService,
		lgr,
	)
	deps.EventService = appServices.NewEventService(
		deps.Repos.EventRepository,
		deps.Repos.EventAttendeeRepository,
		deps.Repos.UserRepository,
		deps.Repos.CollegeRepository,
		deps.AuthzService,
		deps.FileStorage,
		lgr,
	)
	deps.DonationService = appServices.NewDonationService(
		deps.Repos.DonationRepository,
		deps.Repos.CollegeRepository,
		deps.AuthzService,
		lgr,
	)
	deps.SearchService = appServices.NewSearchService(deps.Repos.UserRepository, lgr)
	deps.AdminService = appServices.NewAdminService(
		dbPool,
		deps.Repos,
		deps.AuthzService,
		deps.FileStorage,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.CollegeController = appControllers.NewCollegeController(deps.CollegeService, deps.DonationService, lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService, deps.SearchService, lgr)
	deps.PostController = appControllers.NewPostController(deps.PostService, deps.CommentService, lgr)
	deps.EventController = appControllers.NewEventController(deps.EventService, lgr)
	deps.DonationController = appControllers.NewDonationController(deps.DonationService, lgr)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService, deps.EventService, lgr)

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

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORS.AllowedOrigins) == 1 && cfg.CORS.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	if cfg.RateLimit.Enabled {
		limiter := appMiddleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		router.Use(limiter.Handler())
		lgr.Info().
			Float64("rps", cfg.RateLimit.RequestsPerSecond).
			Int("burst", cfg.RateLimit.Burst).
			Msg("Rate limiting enabled")
	}

	appRoutes.Register(router, &appRoutes.Controllers{
		Auth:     deps.AuthController,
		College:  deps.CollegeController,
		User:     deps.UserController,
		Post:     deps.PostController,
		Event:    deps.EventController,
		Donation: deps.DonationController,
		Admin:    deps.AdminController,
	}, deps.AuthMiddleware)

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
