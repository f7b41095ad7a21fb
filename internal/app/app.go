package app

import (
	"context"
	"errors"
	"finlit_backend/internal/catalog"
	"finlit_backend/internal/config"
	"finlit_backend/internal/controller"
	"finlit_backend/internal/middleware"
	"finlit_backend/internal/repository"
	"finlit_backend/internal/service"
	"finlit_backend/internal/util"
	"finlit_backend/pkg/configwatcher"
	"finlit_backend/pkg/database"
	"finlit_backend/pkg/lock"
	"finlit_backend/pkg/logger"
	"finlit_backend/pkg/monitoring"
	"finlit_backend/pkg/security"
	"finlit_backend/pkg/tracing"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config  *config.Config
	Router  *gin.Engine
	DB      *gorm.DB
	Redis   *redis.Client
	Catalog *catalog.Catalog

	rateLimiter     *security.RateLimiter
	shutdownTracer  func(context.Context) error
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user         *repository.UserRepository
	learningPath *repository.LearningPathRepository
	progress     *repository.ProgressRepository
	badge        *repository.BadgeRepository
	reward       *repository.RewardRepository
}

type services struct {
	auth         *service.AuthService
	user         *service.UserService
	storage      *service.StorageService
	learningPath *service.LearningPathService
	progress     *service.ProgressService
	reward       *service.RewardService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	learningPath *controller.LearningPathController
	progress     *controller.ProgressController
	reward       *controller.RewardController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		learningPath: repository.NewLearningPathRepository(db),
		progress:     repository.NewProgressRepository(db),
		badge:        repository.NewBadgeRepository(db),
		reward:       repository.NewRewardRepository(db),
	}
}

func (a *App) initServices(ctx context.Context, repos *repositories, cfg *config.Config, db *gorm.DB, locker lock.Locker) *services {
	s := &services{}

	s.storage = service.NewStorageService(ctx, cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, s.storage)
	s.learningPath = service.NewLearningPathService(repos.learningPath, repos.user, a.Catalog)
	s.progress = service.NewProgressService(db, repos.progress, repos.badge, repos.user, locker)
	s.reward = service.NewRewardService(db, repos.reward, locker)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		user:         controller.NewUserController(s.user),
		learningPath: controller.NewLearningPathController(s.learningPath),
		progress:     controller.NewProgressController(s.progress),
		reward:       controller.NewRewardController(s.reward),
		health:       controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	a.rateLimiter = security.NewRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.RateWindow())
	router.Use(a.rateLimiter.Middleware())

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware(cfg.Tracing.ServiceName))
	}

	router.Use(monitoring.MetricsMiddleware())
}

// NewApp connects to the configured database and Redis and builds the router.
func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.ForceMigrate || cfg.Server.Mode != gin.ReleaseMode {
		if err := database.Migrate(db); err != nil {
			return nil, err
		}
		if err := database.Seed(db); err != nil {
			return nil, err
		}
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, err
		}
	}

	a, err := New(cfg, db, rdb)
	if err != nil {
		return nil, err
	}

	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(context.Background(), &cfg.Tracing)
		if err != nil {
			return nil, err
		}
		a.shutdownTracer = shutdown
	}
	return a, nil
}

// New wires the HTTP application on top of an open database. rdb may be nil,
// in which case per-user locks are held in process.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*App, error) {
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:  cfg,
		DB:      db,
		Redis:   rdb,
		Catalog: cat,
	}

	var locker lock.Locker = lock.NewLocalLocker()
	if rdb != nil {
		locker = lock.NewRedisLocker(rdb)
	}

	repos := app.initRepositories(db)
	svcs := app.initServices(context.Background(), repos, cfg, db, locker)
	ctrls := app.initControllers(svcs, db)

	monitoring.Init()

	switch cfg.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.New()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, ctrls, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.RegisterConfigCallback(logger.ApplyConfig)
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		app.rateLimiter.Update(newCfg.RateLimit.MaxRequests, newCfg.RateLimit.RateWindow())
	})

	logger.Log.Info("Application initialized",
		zap.Strings("topics", cat.Topics()),
		zap.Bool("redis_lock", rdb != nil),
	)
	return app, nil
}

func (a *App) applyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

// Run serves HTTP until SIGINT or SIGTERM, then shuts down gracefully.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.Config.ConfigFile != "" {
		go func() {
			if err := configwatcher.WatchConfig(ctx, a.Config.ConfigFile, a.applyConfig); err != nil {
				logger.Log.Warn("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	a.Close(shutdownCtx)

	logger.Log.Info("Server exiting")
	return err
}

// Close releases everything New and NewApp acquired.
func (a *App) Close(ctx context.Context) {
	if a.rateLimiter != nil {
		a.rateLimiter.Close()
	}
	if a.shutdownTracer != nil {
		if err := a.shutdownTracer(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = logger.Log.Sync()
}

// Migrate runs the schema migration and seeds the reward pools.
func Migrate(cfg *config.Config) error {
	logger.InitLogger(cfg)
	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	if err := database.Migrate(db); err != nil {
		return err
	}
	return database.Seed(db)
}
