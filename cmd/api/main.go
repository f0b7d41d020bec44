package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pod-seller-ledger/config"
	httpHandler "pod-seller-ledger/internal/adapter/http/handler"
	pgStorage "pod-seller-ledger/internal/adapter/storage/postgres"
	redisStorage "pod-seller-ledger/internal/adapter/storage/redis"
	"pod-seller-ledger/internal/core/domain"
	"pod-seller-ledger/internal/core/ports"
	"pod-seller-ledger/internal/service"
	"pod-seller-ledger/internal/traces"
	"pod-seller-ledger/pkg/logger"
)

var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("PSL_CONFIG_PATH"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("version", version).
		Msg("Starting POD Seller Ledger")

	ctx := context.Background()

	shutdownTracing, err := traces.Init(ctx, cfg.Tracing.OTLPEndpoint, version, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize tracing")
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Warn().Err(err).Msg("Tracer shutdown failed")
		}
	}()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	healthCheckers := []ports.HealthChecker{pgStorage.NewHealthCheck(pool)}

	// Redis is optional: without it idempotency falls back to PostgreSQL and
	// rate limiting is off.
	var (
		idempotencyCache ports.IdempotencyCache
		rateLimitStore   ports.RateLimitStore
	)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		idempotencyCache = redisStorage.NewIdempotencyCache(rdb)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Initialize repositories
	sellerRepo := pgStorage.NewSellerRepo(pool)
	walletRepo := pgStorage.NewWalletRepo(pool)
	advanceRepo := pgStorage.NewAdvanceRepo(pool)
	repaymentRepo := pgStorage.NewRepaymentRepo(pool)
	txnRepo := pgStorage.NewWalletTransactionRepo(pool)
	idempotencyRepo := pgStorage.NewIdempotencyRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	advanceLimit, err := cfg.Ledger.AdvanceLimit()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid ledger configuration")
	}
	settings := service.LedgerSettings{
		Currency:              cfg.Ledger.Currency,
		DefaultAdvanceLimit:   advanceLimit,
		AdvanceNumberPrefix:   cfg.Ledger.AdvanceNumberPrefix,
		AdvanceNumberAttempts: cfg.Ledger.AdvanceNumberAttempts,
	}

	// Initialize services
	auditSvc := service.NewAuditService(auditRepo, logger.Component(log, "audit"))
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	walletSvc := service.NewWalletService(
		sellerRepo,
		walletRepo,
		advanceRepo,
		txnRepo,
		idempotencyRepo,
		idempotencyCache,
		transactor,
		auditSvc,
		settings,
		logger.Component(log, "wallet"),
	)
	advanceSvc := service.NewAdvanceService(
		sellerRepo,
		advanceRepo,
		repaymentRepo,
		idempotencyRepo,
		idempotencyCache,
		walletSvc,
		transactor,
		auditSvc,
		settings,
		logger.Component(log, "advance"),
	)

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		AdvanceSvc:     advanceSvc,
		TokenSvc:       tokenSvc,
		RolePolicy:     domain.NewRolePolicy(cfg.Auth.PrivilegedRoles),
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		MetricsEnabled: cfg.Metrics.Enabled,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
