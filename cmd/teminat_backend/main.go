package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/teminat_takip/internal/core/services"
	"github.com/SscSPs/teminat_takip/internal/dto"
	"github.com/SscSPs/teminat_takip/internal/handlers"
	"github.com/SscSPs/teminat_takip/internal/jobs"
	"github.com/SscSPs/teminat_takip/internal/middleware"
	"github.com/SscSPs/teminat_takip/internal/platform/config"
	"github.com/SscSPs/teminat_takip/internal/repositories/cache"
	"github.com/SscSPs/teminat_takip/internal/repositories/database/pgsql"
	"github.com/SscSPs/teminat_takip/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 15 * time.Second

// @title Teminat Takip API
// @version 1.0
// @description Guarantee letter and bank credit tracking with currency conversion.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.WithMaxConns(cfg.DatabaseMaxConns))
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	checks := map[string]handlers.HealthCheck{
		"database": dbPool.Ping,
	}

	// The rate cache is optional; without redis every instance loads rates from postgres
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("Redis unavailable, rate table cache disabled", slog.String("error", err.Error()))
		} else {
			defer redisClient.Close()
			repos.RateCache = cache.NewRedisRateCache(redisClient, cfg.RateTableCacheTTL)
			checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
		}
	}

	serviceContainer := services.NewServiceContainer(cfg, repos)

	// Warm the rate table so the first grid request does not pay for the load
	if _, err := serviceContainer.ExchangeRate.RateTable(ctx); err != nil {
		logger.Warn("Initial rate table load failed", slog.String("error", err.Error()))
	}

	scheduler := jobs.NewScheduler(logger)
	if err := scheduler.Register(jobs.RateRefreshJobName, cfg.RateRefreshSchedule, jobs.RefreshRates(serviceContainer.ExchangeRate)); err != nil {
		logger.Error("Failed to schedule rate refresh", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := scheduler.Register(jobs.ExpiryScanJobName, cfg.ExpiryScanSchedule, jobs.ScanExpiringLetters(serviceContainer.GuaranteeLetter, cfg.ExpiryWarningDays)); err != nil {
		logger.Error("Failed to schedule expiry scan", slog.String("error", err.Error()))
		os.Exit(1)
	}
	scheduler.Start()

	if err := dto.RegisterBindingValidators(); err != nil {
		logger.Error("Failed to register request validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	router, err := newRouter(cfg, logger)
	if err != nil {
		logger.Error("Failed to build router", slog.String("error", err.Error()))
		os.Exit(1)
	}
	handlers.RegisterRoutes(router, cfg, serviceContainer, checks)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
	if err := scheduler.Stop(shutdownCtx); err != nil {
		logger.Error("Scheduler shutdown failed", slog.String("error", err.Error()))
	}
}

// newRouter creates the engine with the global middleware chain.
func newRouter(cfg *config.Config, logger *slog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		middleware.RateLimit(rateLimiter),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, err
	}
	return r, nil
}
