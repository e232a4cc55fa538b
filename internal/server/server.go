// Package server assembles the HTTP surface of the service and runs it.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"bank-account-service/internal/config"
	"bank-account-service/internal/graphqlapi"
	"bank-account-service/internal/handlers"
	"bank-account-service/internal/middleware"
	"bank-account-service/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	maxBodySize          = "1M"
	visitorCleanupPeriod = time.Minute
)

// Dependencies are the collaborators the HTTP layer needs
type Dependencies struct {
	DB             handlers.Pinger
	AccountService services.AccountServiceInterface
	Gatherer       prometheus.Gatherer
	Logger         *slog.Logger
}

// Server owns the echo instance and its lifecycle
type Server struct {
	echo        *echo.Echo
	cfg         *config.Config
	logger      *slog.Logger
	rateLimiter *middleware.RateLimiter
}

// New builds the router: middleware, REST routes, GraphQL, health and metrics
func New(cfg *config.Config, deps Dependencies) (*Server, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	schema, err := graphqlapi.NewSchema(deps.AccountService, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build graphql schema: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit(maxBodySize))

	s := &Server{
		echo:   e,
		cfg:    cfg,
		logger: logger,
	}

	var apiMiddleware []echo.MiddlewareFunc
	if cfg.RateLimit.RequestsPerSecond > 0 {
		s.rateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		apiMiddleware = append(apiMiddleware, s.rateLimiter.Middleware())
	}

	e.GET("/health", handlers.NewHealthCheckHandler(deps.DB).HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	accounts := e.Group("/api/accounts", apiMiddleware...)
	handlers.NewAccountHandler(deps.AccountService).RegisterRoutes(accounts)

	graphqlHandler := graphqlapi.NewHandler(schema)
	e.GET("/graphql", graphqlHandler.Serve, apiMiddleware...)
	e.POST("/graphql", graphqlHandler.Serve, apiMiddleware...)

	return s, nil
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Addr returns the bound listener address once the server is running
func (s *Server) Addr() string {
	addr := s.echo.ListenerAddr()
	if addr == nil {
		return ""
	}
	return addr.String()
}

// Run serves until ctx is canceled, then drains in-flight requests within the shutdown timeout
func (s *Server) Run(ctx context.Context) error {
	if s.rateLimiter != nil {
		go s.rateLimiter.RunCleanup(ctx, visitorCleanupPeriod)
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting server",
			"env", s.cfg.Server.Environment,
			"address", s.cfg.Server.Address(),
		)
		if err := s.echo.Start(s.cfg.Server.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	s.logger.Info("Server stopped")
	return nil
}
