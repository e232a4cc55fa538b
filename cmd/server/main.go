package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"bank-account-service/internal/config"
	"bank-account-service/internal/database"
	"bank-account-service/internal/logging"
	"bank-account-service/internal/repositories"
	"bank-account-service/internal/server"
	"bank-account-service/internal/services"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	logger := logging.New(cfg.Log)

	db, err := database.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	accountRepository := repositories.NewBankAccountRepository(db.DB)
	if cfg.Breaker.MaxFailures > 0 {
		breaker := repositories.NewCircuitBreaker(repositories.CircuitBreakerConfig{
			MaxFailures:     cfg.Breaker.MaxFailures,
			ResetTimeout:    cfg.Breaker.ResetTimeout,
			HalfOpenMaxSucc: repositories.DefaultCircuitBreakerConfig().HalfOpenMaxSucc,
		})
		accountRepository = repositories.NewCircuitBreakerRepository(accountRepository, breaker)
	}
	accountService := services.NewAccountService(
		accountRepository,
		services.NewPrometheusMetrics(prometheus.DefaultRegisterer),
		logger,
	)

	srv, err := server.New(cfg, server.Dependencies{
		DB:             db,
		AccountService: accountService,
		Gatherer:       prometheus.DefaultGatherer,
		Logger:         logger,
	})
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}
