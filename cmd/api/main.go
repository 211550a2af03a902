package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/realestate-service/internal/api/http"
	"github.com/spec-kit/realestate-service/internal/api/http/handlers"
	"github.com/spec-kit/realestate-service/internal/auth"
	"github.com/spec-kit/realestate-service/internal/config"
	"github.com/spec-kit/realestate-service/internal/events"
	"github.com/spec-kit/realestate-service/internal/observability"
	"github.com/spec-kit/realestate-service/internal/persistence"
	"github.com/spec-kit/realestate-service/internal/repository"
	"github.com/spec-kit/realestate-service/internal/service"
	"github.com/spec-kit/realestate-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	propertyRepo := repository.NewPropertyRepository(pool)
	inquiryRepo := repository.NewInquiryRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	revocations := auth.NewRedisRevocationList(redis.Client)
	cache := service.NewListingCache(redis.Client)

	authService := service.NewAuthService(cfg.Auth, userRepo, revocations, logger)
	propertyService := service.NewPropertyService(propertyRepo, userRepo, dispatcher, cache, logger)
	agentService := service.NewAgentService(userRepo)
	inquiryService := service.NewInquiryService(inquiryRepo, propertyRepo, dispatcher, logger)
	dashboardService := service.NewDashboardService(propertyRepo, inquiryRepo, userRepo)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notify)

	worker.StartNotificationWorker(notificationService)
	worker.StartFeaturedWarmer(ctx, propertyService, 5*time.Minute, logger)

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo, revocations)
	loginLimiter := httptransport.NewLoginRateLimiter(redis.Client, cfg.Auth.LoginRatePerMinute, logger)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Properties:     handlers.NewPropertiesHandler(propertyService),
		Agents:         handlers.NewAgentsHandler(agentService),
		Contact:        handlers.NewContactHandler(inquiryService),
		Admin:          handlers.NewAdminHandler(dashboardService, propertyService, agentService),
		AuthMiddleware: authMiddleware,
		LoginLimiter:   loginLimiter,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
