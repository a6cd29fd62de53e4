package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"mythos_backend/internal/config"
	"mythos_backend/internal/controller"
	"mythos_backend/internal/middleware"
	"mythos_backend/internal/repository"
	"mythos_backend/internal/service"
	"mythos_backend/internal/util"
	"mythos_backend/pkg/configwatcher"
	"mythos_backend/pkg/database"
	"mythos_backend/pkg/logger"
	"mythos_backend/pkg/monitoring"
	"mythos_backend/pkg/security"
	"mythos_backend/pkg/tracing"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	Store           *repository.ContentStore
	Redis           *redis.Client
	limiter         *security.Limiter
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type services struct {
	content         *service.ContentService
	quiz            *service.QuizService
	personalization *service.PersonalizationService
	community       *service.CommunityService
	progress        *service.ProgressService
	lore            *service.LoreService
	vr              *service.VRService
}

type controllers struct {
	content         *controller.ContentController
	quiz            *controller.QuizController
	personalization *controller.PersonalizationController
	community       *controller.CommunityController
	progress        *controller.ProgressController
	lore            *controller.LoreController
	vr              *controller.VRController
	health          *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func initServices(store *repository.ContentStore, publisher service.ActivityPublisher) *services {
	return &services{
		content:         service.NewContentService(store),
		quiz:            service.NewQuizService(store, publisher),
		personalization: service.NewPersonalizationService(store, publisher),
		community:       service.NewCommunityService(store, publisher),
		progress:        service.NewProgressService(store, publisher),
		lore:            service.NewLoreService(store),
		vr:              service.NewVRService(store),
	}
}

func initControllers(s *services, store *repository.ContentStore) *controllers {
	return &controllers{
		content:         controller.NewContentController(s.content),
		quiz:            controller.NewQuizController(s.quiz),
		personalization: controller.NewPersonalizationController(s.personalization),
		community:       controller.NewCommunityController(s.community),
		progress:        controller.NewProgressController(s.progress),
		lore:            controller.NewLoreController(s.lore),
		vr:              controller.NewVRController(s.vr),
		health:          controller.NewHealthController(store),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog())
	router.Use(monitoring.MetricsMiddleware())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(a.limiter))
}

// New wires the HTTP stack on top of an already filled store.
func New(cfg *config.Config, store *repository.ContentStore, publisher service.ActivityPublisher) *App {
	util.UseJSONFieldNames()

	app := &App{
		Config:  cfg,
		Store:   store,
		limiter: security.NewLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window()),
	}

	controllers := initControllers(initServices(store, publisher), store)

	router := gin.New()
	app.Router = router
	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	return app
}

// NewStore builds the content store and seeds it when configured to.
func NewStore(cfg *config.Config) (*repository.ContentStore, error) {
	store := repository.NewContentStore()
	if !cfg.Store.Seed {
		return store, nil
	}

	var (
		fx  *repository.Fixtures
		err error
	)
	if cfg.Store.FixturesPath != "" {
		fx, err = repository.LoadFixtures(cfg.Store.FixturesPath)
	} else {
		fx, err = repository.DefaultFixtures()
	}
	if err != nil {
		return nil, err
	}
	store.Seed(fx)
	return store, nil
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	gin.SetMode(cfg.Server.Mode)

	logger.Log.Info("Logger initialized successfully", zap.String("level", logger.Level().String()))

	store, err := NewStore(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize content store", zap.Error(err))
	}
	logger.Log.Info("Content store ready", zap.Any("collections", store.Stats()))

	var (
		publisher service.ActivityPublisher = service.NopActivityPublisher{}
		rdb       *redis.Client
	)
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		}
		publisher = service.NewRedisActivityPublisher(rdb, cfg.Redis.Channel)
	}

	var tp *sdktrace.TracerProvider
	if cfg.Tracing.Enabled {
		tp, err = tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	// 监控初始化
	monitoring.Init()
	monitoring.TrackStore(store.Stats)

	app := New(cfg, store, publisher)
	app.Redis = rdb
	app.tracer = tp
	app.RegisterConfigCallback(configwatcher.ApplyLogLevel)

	return app
}

func (a *App) reloadConfig(cfg *config.Config) {
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	go a.limiter.Run(ctx.Done())

	if a.Config.ConfigFile != "" {
		go func() {
			if err := configwatcher.WatchConfig(ctx, a.Config.ConfigFile, a.reloadConfig); err != nil {
				logger.Log.Error("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("Listen failed", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := tracing.Shutdown(shutdownCtx, a.tracer); err != nil {
		logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Log.Error("Failed to close redis", zap.Error(err))
		}
	}

	logger.Log.Info("Server exiting")
}
