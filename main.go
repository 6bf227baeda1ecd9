// Package main provides the hello service, a minimal HTTP API for Cloud Run.
//
// This service exposes:
//   - GET /                 greeting: {"Hello": "Cloud Run"}
//   - GET /items/{item_id}  item echo: {"item_id": <int>, "q": <string|null>}
//   - GET /healthz          health check: {"status": "healthy"}
//   - GET /metrics          Prometheus metrics
//
// Usage:
//
//	./hello-service
//
// Environment:
//
//	PORT: Server port (default: 8080)
//	LOG_LEVEL: zap level (default: info)
//	RATE_LIMIT_RPS: per-client requests per second, 0 disables (default: 0)
//	TRUSTED_PROXIES: comma separated IPs/CIDRs allowed to set X-Forwarded-For (default: none)
//
// See the config package for the full list.
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

	"hello-service/config"
	"hello-service/handlers"
	"hello-service/logger"
	"hello-service/metrics"
	"hello-service/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	// visitorTTL is how long an idle client keeps its rate limit bucket
	visitorTTL = 10 * time.Minute

	// visitorCleanupInterval is how often idle buckets are swept
	visitorCleanupInterval = time.Minute
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Options{Level: "info", Service: config.DefaultServiceName, Version: version})
		logger.Logger.Fatal("Config load failed", zap.Error(err))
	}

	// Initialize logger
	logger.Init(logger.Options{
		Level:    cfg.LogLevel,
		Service:  cfg.ServiceName,
		Revision: cfg.Revision,
		Version:  version,
	})
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)
	metrics.SetBuildInfo(cfg.ServiceName, cfg.Revision, version)

	logger.Logger.Info("Starting hello service",
		zap.String("port", cfg.Port),
		zap.String("gin_mode", cfg.GinMode),
		zap.Bool("rate_limit", cfg.RateLimit.Enabled()),
	)

	done := make(chan struct{})
	router, err := setupRouter(cfg, done)
	if err != nil {
		logger.Logger.Fatal("Router setup failed", zap.Error(err))
	}
	server := newServer(cfg, router)

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	GracefulShutdown(server, cfg.ShutdownTimeout)
	close(done)
}

// newServer wraps the router in an http.Server with the configured timeouts
func newServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// setupRouter configures and returns the Gin router with all routes and middleware.
// Closing done stops background work started for the router.
func setupRouter(cfg *config.Config, done <-chan struct{}) (*gin.Engine, error) {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// ClientIP feeds the rate limiter and request logs; only listed proxies
	// may override the socket peer via X-Forwarded-For.
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	// Middleware
	router.Use(
		middleware.RequestID(),
		middleware.LoggingMiddleware(cfg.ProjectID),
		middleware.MetricsMiddleware(),
		middleware.Recovery(),
	)

	// Health check endpoint
	router.GET("/healthz", handlers.HealthCheck)

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupAPIRoutes(router, cfg.RateLimit, done)

	router.NoRoute(handlers.NotFound)
	router.NoMethod(handlers.MethodNotAllowed)

	return router, nil
}

// setupAPIRoutes configures the application routes. Probes and metrics are
// registered outside this group so the rate limiter never rejects them.
func setupAPIRoutes(router *gin.Engine, rl config.RateLimitConfig, done <-chan struct{}) {
	api := router.Group("/")
	if rl.Enabled() {
		limiter := middleware.NewRateLimiter(rl.RPS, rl.Burst, visitorTTL)
		go limiter.Run(visitorCleanupInterval, done)
		api.Use(middleware.RateLimitMiddleware(limiter))
	}
	{
		api.GET("/", handlers.Root)
		api.GET("/items/:item_id", handlers.ReadItem)
	}
}

// GracefulShutdown handles graceful server shutdown
func GracefulShutdown(server *http.Server, timeout time.Duration) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	shutdownOnSignal(quit, server, timeout)
}

// shutdownOnSignal blocks until a signal arrives, then drains the server
func shutdownOnSignal(quit <-chan os.Signal, server *http.Server, timeout time.Duration) {
	sig := <-quit
	logger.Logger.Info("Shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}
