package bootstrap

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/quillacademy/api/docs" // Import generated swagger docs
	appControllers "github.com/quillacademy/api/internal/app/controllers"
	appRepos "github.com/quillacademy/api/internal/app/repositories"
	appRoutes "github.com/quillacademy/api/internal/app/routes"
	appServices "github.com/quillacademy/api/internal/app/services"
	"github.com/quillacademy/api/internal/config"
	"github.com/quillacademy/api/internal/db"
	appMiddleware "github.com/quillacademy/api/internal/middleware"
	"github.com/quillacademy/api/internal/pkg/logger"
	"github.com/quillacademy/api/internal/pkg/payments"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services                 *appServices.Services
	ClassController          *appControllers.ClassController
	UserController           *appControllers.UserController
	PaymentController        *appControllers.PaymentController
	TeacherRequestController *appControllers.TeacherRequestController
	AssignmentController     *appControllers.AssignmentController
	FeedbackController       *appControllers.FeedbackController
	StatsController          *appControllers.StatsController
	Repos                    *appRepos.Repositories
	Gateway                  payments.IntentCreator
	Logger                   zerolog.Logger
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

// SetupDatabase establishes the document-store connection and creates the
// unique indexes the duplicate guards depend on.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.MongoDB, error) {
	lgr.Info().Str("database", cfg.Database.Name).Msg("Establishing database connection...")
	database, err := db.NewMongoDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout())
	defer cancel()
	if err := database.EnsureIndexes(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to create indexes")
		database.Close(context.Background())
		return nil, err
	}
	lgr.Info().Msg("Unique indexes ensured.")

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.MongoDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Database)
	deps.Gateway = payments.NewStripeGateway(cfg.Stripe.SecretKey)
	deps.Services = appServices.NewServices(deps.Repos, deps.Gateway)

	deps.ClassController = appControllers.NewClassController(deps.Services.ClassService)
	deps.UserController = appControllers.NewUserController(deps.Services.UserService)
	deps.PaymentController = appControllers.NewPaymentController(deps.Services.PaymentService)
	deps.TeacherRequestController = appControllers.NewTeacherRequestController(deps.Services.TeacherRequestService)
	deps.AssignmentController = appControllers.NewAssignmentController(deps.Services.AssignmentService)
	deps.FeedbackController = appControllers.NewFeedbackController(deps.Services.FeedbackService)
	deps.StatsController = appControllers.NewStatsController(deps.Services.StatsService)

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
	if len(cfg.CORS.AllowOrigins) == 1 && cfg.CORS.AllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-ID"}
	router.Use(cors.New(corsConfig))

	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestTimeout(cfg.RequestTimeout()))

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.ClassController,
		deps.UserController,
		deps.PaymentController,
		deps.TeacherRequestController,
		deps.AssignmentController,
		deps.FeedbackController,
		deps.StatsController,
	)

	// Root liveness endpoint answers plain text
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Server is running!")
	})

	return router
}
