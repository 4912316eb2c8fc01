package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	httptransport "github.com/ironhall/gym-service/internal/api/http"
	"github.com/ironhall/gym-service/internal/api/http/handlers"
	"github.com/ironhall/gym-service/internal/auth"
	"github.com/ironhall/gym-service/internal/clock"
	"github.com/ironhall/gym-service/internal/config"
	"github.com/ironhall/gym-service/internal/events"
	"github.com/ironhall/gym-service/internal/observability"
	"github.com/ironhall/gym-service/internal/persistence"
	"github.com/ironhall/gym-service/internal/qrtoken"
	"github.com/ironhall/gym-service/internal/repository"
	"github.com/ironhall/gym-service/internal/service"
	"github.com/ironhall/gym-service/internal/worker"
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

	metrics := observability.NewMetrics()
	clk := clock.Real{}
	loc := cfg.Gym.Location()

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

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	qrStore := newQRStore(cfg, redis, clk, logger)
	passwords := auth.NewPasswordMatcher(cfg.Auth.PlaintextPasswords, cfg.Auth.BcryptCost)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL(), clk)
	dispatcher := events.NewInMemoryDispatcher(logger)

	pool := pg.PoolHandle()
	adminRepo := repository.NewAdminRepository(pool)
	memberRepo := repository.NewMemberRepository(pool)
	stockRepo := repository.NewStockRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)
	equipmentRepo := repository.NewEquipmentRepository(pool)
	loginLogRepo := repository.NewLoginLogRepository(pool)

	if cfg.Postgres.Seed {
		bootstrap := service.NewBootstrapService(service.BootstrapDependencies{
			AdminRepo:     adminRepo,
			StockRepo:     stockRepo,
			EquipmentRepo: equipmentRepo,
			Passwords:     passwords,
			Clock:         clk,
			Location:      loc,
			Logger:        logger,
			AdminEmail:    cfg.Auth.DefaultAdminEmail,
			AdminPassword: cfg.Auth.DefaultAdminPassword,
		})
		if err := bootstrap.Seed(ctx); err != nil {
			logger.Fatal("failed to seed database", zap.Error(err))
		}
	}

	authService := service.NewAuthService(service.AuthDependencies{
		AdminRepo:    adminRepo,
		Passwords:    passwords,
		TokenManager: tokens,
	})
	qrService := service.NewQRService(service.QRDependencies{
		Store:      qrStore,
		MemberRepo: memberRepo,
		Passwords:  passwords,
		Dispatcher: dispatcher,
		Clock:      clk,
		Location:   loc,
		Metrics:    metrics,
		Logger:     logger,
	})
	memberService := service.NewMemberService(service.MemberDependencies{
		MemberRepo: memberRepo,
		Passwords:  passwords,
		Dispatcher: dispatcher,
		Clock:      clk,
		Location:   loc,
		SoonDays:   cfg.Gym.MembershipSoonDays,
		Logger:     logger,
	})
	equipmentService := service.NewEquipmentService(service.EquipmentDependencies{
		EquipmentRepo:   equipmentRepo,
		Clock:           clk,
		Location:        loc,
		SoonDays:        cfg.Gym.MaintenanceSoonDays,
		DefaultInterval: cfg.Gym.DefaultMaintenanceMonths,
	})
	dashboardService := service.NewDashboardService(service.DashboardDependencies{
		MemberRepo: memberRepo,
		Clock:      clk,
		Location:   loc,
		Capacity:   cfg.Gym.Capacity,
		SoonDays:   cfg.Gym.MembershipSoonDays,
	})
	analyticsService := service.NewAnalyticsService(loginLogRepo, clk)

	worker.StartCheckInWorker(service.NewCheckInRecorder(dispatcher, loginLogRepo, metrics, logger))
	gauges := worker.NewMemberGaugeWorker(cfg.Worker.GaugeInterval(), dashboardService, metrics, logger)
	go func() {
		if err := gauges.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("member gauge worker stopped", zap.Error(err))
		}
	}()

	app := fiber.New(httptransport.ServerConfig(cfg.App, logger, metrics))
	httptransport.RegisterMiddlewares(app, httptransport.MiddlewareConfig{
		Logger:      logger,
		Metrics:     metrics,
		Timeout:     cfg.App.RequestTimeout(),
		CORSOrigins: cfg.App.CORSOrigins,
	})

	var redisPinger handlers.Pinger
	if redis.Enabled() {
		redisPinger = redis
	}

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redisPinger),
		Auth:           handlers.NewAuthHandler(authService, qrService),
		Members:        handlers.NewMemberHandler(memberService),
		Stock:          handlers.NewStockHandler(service.NewStockService(stockRepo)),
		Employees:      handlers.NewEmployeeHandler(service.NewEmployeeService(employeeRepo)),
		Equipment:      handlers.NewEquipmentHandler(equipmentService),
		Reports:        handlers.NewReportHandler(dashboardService, analyticsService),
		AuthMiddleware: auth.NewAuthMiddleware(tokens),
		RateLimiter:    httptransport.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst),
		Metrics:        metrics,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)
	cancel()

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
}

func newQRStore(cfg *config.Config, redis *persistence.Redis, clk clock.Clock, logger *zap.Logger) qrtoken.Store {
	if cfg.QR.Store == config.QRStoreRedis && redis.Enabled() {
		logger.Info("qr tokens stored in redis", zap.String("prefix", cfg.QR.RedisPrefix))
		return qrtoken.NewRedisStore(redis.Client, qrtoken.RedisOptions{
			Prefix:    cfg.QR.RedisPrefix,
			TTL:       cfg.QR.TokenTTL(),
			Retention: cfg.QR.Retention(),
			Clock:     clk,
		})
	}
	logger.Info("qr tokens stored in memory")
	return qrtoken.NewMemoryStore(clk, cfg.QR.TokenTTL())
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
