// Package app assembles the server: storage backend, services, controllers,
// middlewares and the HTTP lifecycle.
package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/config"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/controller"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/middleware"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/repository"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/service"
	"github.com/Saurabh6266/Python-Learning-Platform/pkg/configwatcher"
	"github.com/Saurabh6266/Python-Learning-Platform/pkg/logger"
	"github.com/Saurabh6266/Python-Learning-Platform/pkg/monitoring"
	"github.com/Saurabh6266/Python-Learning-Platform/pkg/security"
	"github.com/Saurabh6266/Python-Learning-Platform/pkg/tracing"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	Store  repository.Store

	services *services

	mu              sync.Mutex
	configCallbacks []func(*config.Config)
}

type services struct {
	content        *service.ContentService
	progress       *service.ProgressService
	recommendation *service.RecommendationService
	streak         *service.StreakService
	community      *service.CommunityService
	practice       *service.PracticeService
	user           *service.UserService
}

type controllers struct {
	content   *controller.ContentController
	progress  *controller.ProgressController
	community *controller.CommunityController
	practice  *controller.PracticeController
	user      *controller.UserController
	health    *controller.HealthController
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)

	store, err := repository.New(cfg)
	if err != nil {
		logger.Log.Fatal("failed to initialize storage backend", zap.Error(err))
	}
	logger.Log.Info("storage backend ready", zap.String("backend", cfg.Storage.Backend))

	a := &App{
		Config: cfg,
		Store:  store,
	}

	if cfg.MigrateOnly {
		return a
	}

	svcs := a.initServices(store)
	a.services = svcs
	ctrls := a.initControllers(svcs)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	a.Router = router

	a.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("python-learning-platform", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("failed to initialize tracing", zap.Error(err))
		}
	}

	a.registerRoutes(router, ctrls)

	go configwatcher.WatchConfig("configs/config.yaml", a.applyConfig)

	return a
}

func (a *App) initServices(store repository.Store) *services {
	s := &services{}
	s.content = service.NewContentService(store)
	s.progress = service.NewProgressService(store, store)
	s.recommendation = service.NewRecommendationService(store, store)
	s.streak = service.NewStreakService(store)
	s.community = service.NewCommunityService(store)
	s.practice = service.NewPracticeService(store, store)
	s.user = service.NewUserService(store, s.streak)
	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		content:   controller.NewContentController(s.content),
		progress:  controller.NewProgressController(s.progress, s.recommendation, s.streak),
		community: controller.NewCommunityController(s.community),
		practice:  controller.NewPracticeController(s.practice),
		user:      controller.NewUserController(s.user),
		health:    controller.NewHealthController(),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// RegisterConfigCallback adds a hook run after every successful reload.
func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.configCallbacks = append(a.configCallbacks, callback)
}

// applyConfig swaps the active configuration. Storage and middleware setup
// are fixed at startup; reloads affect only settings read per request.
func (a *App) applyConfig(cfg *config.Config) {
	a.mu.Lock()
	a.Config = cfg
	callbacks := append([]func(*config.Config){}, a.configCallbacks...)
	a.mu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("server listening", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown:", err)
	}

	logger.Log.Info("server exited")
}
