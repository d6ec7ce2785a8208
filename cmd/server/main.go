package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/glowpanel/engine/internal/adapter/http"
	"github.com/glowpanel/engine/internal/adapter/http/handler"
	"github.com/glowpanel/engine/internal/adapter/http/middleware"
	postgresRepo "github.com/glowpanel/engine/internal/adapter/repository/postgres"
	redisRepo "github.com/glowpanel/engine/internal/adapter/repository/redis"
	"github.com/glowpanel/engine/internal/domain"
	"github.com/glowpanel/engine/internal/infrastructure/config"
	"github.com/glowpanel/engine/internal/infrastructure/eventpublisher"
	"github.com/glowpanel/engine/internal/infrastructure/logging"
	"github.com/glowpanel/engine/internal/infrastructure/metrics"
	"github.com/glowpanel/engine/internal/infrastructure/postgres"
	"github.com/glowpanel/engine/internal/infrastructure/redis"
	"github.com/glowpanel/engine/internal/usecase"
)

func main() {
	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	slogger := logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	ctx := context.Background()

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize metrics
	m := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	retrier := postgresRepo.NewRetrier().WithMaxRetries(cfg.OrderMaxRetries)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	orderRepo := postgresRepo.NewOrderRepository(pool)
	affiliateRepo := postgresRepo.NewAffiliateRepository(pool)
	outboxRepo := postgresRepo.NewOutboxRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	cache := redisRepo.NewCache(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	// Domain tables
	ranks := domain.DefaultRankTable()
	commissions := domain.DefaultCommissionSchedule()

	// Initialize use cases
	accountUC := usecase.NewAccountUseCase(txManager, retrier, accountRepo, outboxRepo, idGen, ranks, cache)
	orderUC := usecase.NewOrderUseCase(txManager, retrier, accountRepo, orderRepo, affiliateRepo, outboxRepo, idGen, ranks, commissions, m)
	affiliateUC := usecase.NewAffiliateUseCase(accountRepo, affiliateRepo)

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(accountUC)
	orderHandler := handler.NewOrderHandler(orderUC)
	affiliateHandler := handler.NewAffiliateHandler(affiliateUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:   accountHandler,
		OrderHandler:     orderHandler,
		AffiliateHandler: affiliateHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
		RateLimiter:      middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	})

	// Start outbox publisher
	publisherCtx, stopPublisher := context.WithCancel(ctx)
	defer stopPublisher()

	publisher := eventpublisher.NewEventPublisher(eventpublisher.Config{
		OutboxRepo: outboxRepo,
		Publisher:  eventpublisher.NewLogPublisher(slogger.Logger),
		Logger:     slogger.Logger,
		Metrics:    m,
		BatchSize:  cfg.PublishBatchSize,
		Interval:   cfg.PublishInterval,
	})

	go func() {
		if err := publisher.Start(publisherCtx); err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("event publisher stopped")
		}
	}()

	// Expose Prometheus metrics alongside the API
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	stopPublisher()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), resolveShutdownTimeout(cfg))
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func resolveShutdownTimeout(cfg *config.Config) time.Duration {
	if cfg.HTTPShutdownTimeout > 0 {
		return cfg.HTTPShutdownTimeout
	}
	return 10 * time.Second
}
