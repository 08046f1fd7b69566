package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DukeRupert/memberhub/internal"
	"github.com/DukeRupert/memberhub/internal/apiclient"
	"github.com/DukeRupert/memberhub/internal/handler"
	"github.com/DukeRupert/memberhub/internal/metrics"
	"github.com/DukeRupert/memberhub/internal/middleware"
	"github.com/DukeRupert/memberhub/internal/storage"
)

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)
	isSecure := cfg.IsSecure()

	// Remote API client
	api, err := apiclient.New(apiclient.Config{
		BaseURL:        cfg.APIBaseURL,
		MaintenanceURL: cfg.MaintenanceStatusURL,
		Timeout:        cfg.APITimeout,
		Logger:         logger,
	})
	if err != nil {
		return fmt.Errorf("api client initialization failed: %w", err)
	}

	// Legal content store
	content, err := storage.New(storage.Config{
		Provider: cfg.ContentProvider,
		Local:    storage.LocalConfig{BasePath: cfg.ContentPath},
		R2: storage.R2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			Endpoint:        cfg.R2Endpoint,
		},
	}, logger)
	if err != nil {
		return fmt.Errorf("content storage initialization failed: %w", err)
	}
	logger.Info("Content storage ready", "provider", cfg.ContentProvider)

	// Initialize middleware
	gate := middleware.NewGate(api, cfg.MaintenanceCheckTimeout, logger)
	requestLog := middleware.NewRequestLoggingMiddleware(logger)
	security := middleware.NewSecurityHeadersMiddleware(isSecure)
	metricsAuth := middleware.NewBasicAuthMiddleware("metrics", cfg.MetricsUsername, cfg.MetricsPassword)

	loginLimiter := middleware.NewRateLimiter(cfg.LoginMaxAttempts, cfg.LoginWindow)
	go loginLimiter.Sweep(ctx)
	loginLimit := middleware.NewRateLimitMiddleware(loginLimiter, logger).Limit

	// Initialize handlers
	authHandler := handler.NewAuthHandler(api, loginLimiter, logger, isSecure, cfg.SessionMaxAge)
	pageHandler := handler.NewPageHandler(content, api, cfg.MaintenanceCheckTimeout, logger, isSecure)
	supportHandler := handler.NewSupportHandler(api, logger, isSecure)

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	mux := http.NewServeMux()

	// Static files
	staticFS := http.FileServer(http.Dir("web/static"))
	mux.Handle("GET /static/", http.StripPrefix("/static/", staticFS))

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Metrics
	if !metricsAuth.Enabled() {
		logger.Warn("METRICS_USERNAME/METRICS_PASSWORD not set, /metrics is unprotected")
	}
	mux.Handle("GET /metrics", metricsAuth.Handler(promhttp.Handler()))

	pageHandler.RegisterRoutes(mux)
	authHandler.RegisterRoutes(mux, loginLimit)
	supportHandler.RegisterRoutes(mux)

	// Every page request passes the access gate before reaching the mux.
	app := middleware.Stack(
		metrics.Middleware,
		requestLog.Handler,
		security.Handler,
		middleware.CrossOriginProtection,
		gate.Handler,
	)(mux)

	// ==========================================================================
	// Start server
	// ==========================================================================

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           app,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		logger.Info("Server started", "address", server.Addr, "env", cfg.Env, "api", cfg.APIBaseURL)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
		}
	}()

	// Wait for interrupt signal
	<-sigChan
	logger.Info("Shutdown signal received, initiating graceful shutdown...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Graceful shutdown complete")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
