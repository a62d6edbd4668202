package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Raam751/ClassPulse/internal/config"
	"github.com/Raam751/ClassPulse/internal/controller"
	"github.com/Raam751/ClassPulse/internal/repository"
	"github.com/Raam751/ClassPulse/internal/service"
	"github.com/Raam751/ClassPulse/pkg/database"
	"github.com/Raam751/ClassPulse/pkg/logger"
	"github.com/Raam751/ClassPulse/pkg/monitoring"
	"github.com/Raam751/ClassPulse/pkg/security"
	"github.com/Raam751/ClassPulse/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Engine *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	tracerProvider *sdktrace.TracerProvider

	// repositories
	userRepo     *repository.UserRepository
	sessionRepo  *repository.SessionRepository
	questionRepo *repository.QuestionRepository
	responseRepo *repository.ResponseRepository

	// services
	authService      *service.AuthService
	userService      *service.UserService
	sessionService   *service.SessionService
	questionService  *service.QuestionService
	responseService  *service.ResponseService
	analyticsService *service.AnalyticsService
	reportService    *service.ReportService
	emailService     *service.EmailService
	storageService   *service.StorageService

	// controllers
	authController      *controller.AuthController
	userController      *controller.UserController
	sessionController   *controller.SessionController
	questionController  *controller.QuestionController
	responseController  *controller.ResponseController
	analyticsController *controller.AnalyticsController
	reportController    *controller.ReportController
	fileController      *controller.FileController
	healthController    *controller.HealthController
}

func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		return nil, err
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Analytics caching degrades gracefully without redis.
		logger.Log.Warn("Redis unavailable, analytics cache disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("classpulse", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Warn("Tracing init failed", zap.Error(err))
		} else {
			app.tracerProvider = tp
		}
	}

	monitoring.Init()

	app.initRepositories()
	if err := app.initServices(); err != nil {
		return nil, err
	}
	app.initControllers()
	app.initEngine()

	return app, nil
}

func (a *App) initRepositories() {
	a.userRepo = repository.NewUserRepository(a.DB)
	a.sessionRepo = repository.NewSessionRepository(a.DB)
	a.questionRepo = repository.NewQuestionRepository(a.DB)
	a.responseRepo = repository.NewResponseRepository(a.DB)
}

func (a *App) initServices() error {
	cacheTTL := time.Duration(a.Config.Redis.AnalyticsTTLSeconds) * time.Second
	a.analyticsService = service.NewAnalyticsService(a.sessionRepo, a.questionRepo, a.responseRepo, a.userRepo, a.Redis, cacheTTL)
	a.emailService = service.NewEmailService(&a.Config.Mail, a.analyticsService)

	a.authService = service.NewAuthService(a.userRepo, a.emailService, a.Config)
	a.userService = service.NewUserService(a.userRepo)
	a.sessionService = service.NewSessionService(a.sessionRepo, a.userRepo, a.emailService, a.DB)
	a.questionService = service.NewQuestionService(a.questionRepo, a.sessionRepo, a.DB)
	a.responseService = service.NewResponseService(a.responseRepo, a.questionRepo, a.userRepo, a.DB)
	a.reportService = service.NewReportService(a.userRepo, a.sessionRepo, a.questionRepo, a.responseRepo)

	storage, err := service.NewStorageService(a.Config)
	if err != nil {
		return err
	}
	a.storageService = storage
	return nil
}

func (a *App) initControllers() {
	a.authController = controller.NewAuthController(a.authService, a.userService)
	a.userController = controller.NewUserController(a.userService)
	a.sessionController = controller.NewSessionController(a.sessionService)
	a.questionController = controller.NewQuestionController(a.questionService)
	a.responseController = controller.NewResponseController(a.responseService)
	a.analyticsController = controller.NewAnalyticsController(a.analyticsService)
	a.reportController = controller.NewReportController(a.reportService)
	a.fileController = controller.NewFileController(a.storageService)
	a.healthController = controller.NewHealthController(a.DB)
}

func (a *App) initEngine() {
	gin.SetMode(a.Config.Server.Mode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(security.CORS(a.Config.CORS.AllowedOrigins))
	engine.Use(security.Secure())
	if a.Config.RateLimit.MaxRequests > 0 {
		window := time.Duration(a.Config.RateLimit.WindowMinutes) * time.Minute
		engine.Use(security.RateLimiter(a.Config.RateLimit.MaxRequests, window))
	}
	engine.Use(monitoring.MetricsMiddleware())
	if a.tracerProvider != nil {
		engine.Use(tracing.GinMiddleware())
	}

	a.Engine = engine
	a.registerRoutes()
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM, then drains
// in-flight requests before returning.
func (a *App) Run() error {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Engine,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server starting", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Log.Info("Shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Warn("Tracer shutdown failed", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Log.Info("Server stopped")
	return nil
}

// Reload applies hot-reloadable settings after a config file change.
func (a *App) Reload(cfg *config.Config) {
	a.Config.RateLimit = cfg.RateLimit
	a.Config.CORS = cfg.CORS
	a.Config.Mail = cfg.Mail
	a.emailService.Config = &a.Config.Mail
	logger.Log.Info("Configuration reloaded")
}
