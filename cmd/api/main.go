package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"atm-service/config"
	httpHandler "atm-service/internal/adapter/http/handler"
	fileStorage "atm-service/internal/adapter/storage/file"
	redisStorage "atm-service/internal/adapter/storage/redis"
	"atm-service/internal/core/ports"
	"atm-service/internal/service"
	"atm-service/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting ATM service")

	ctx := context.Background()

	// Load the accounts snapshot. Load failure degrades to an empty store
	// (logged inside the store), so the service always starts.
	accountStore := fileStorage.NewAccountStore(cfg.Ledger.AccountsFile, log)

	// Transaction history: cleared once per process start.
	historyLog := fileStorage.NewHistoryLog(cfg.Ledger.HistoryFile)
	if err := historyLog.Reset(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to reset transaction history")
	}

	// Core services
	sessions := service.NewSession()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	ledgerSvc := service.NewLedgerService(accountStore, historyLog, sessions, log)
	reportingSvc := service.NewReportingService(historyLog)

	healthCheckers := []ports.HealthChecker{fileStorage.NewHealthCheck(historyLog)}

	// Optional Redis-backed rate limiting
	var rateLimitStore *redisStorage.RateLimitStore
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	} else {
		log.Info().Msg("Rate limiting disabled (redis.enabled=false)")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		LedgerSvc:      ledgerSvc,
		ReportingSvc:   reportingSvc,
		Sessions:       sessions,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
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
