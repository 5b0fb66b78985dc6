// Package main is the entry point for the API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/shopkori/assistant-platform/internal/catalog"
	"github.com/shopkori/assistant-platform/internal/config"
	"github.com/shopkori/assistant-platform/internal/events"
	"github.com/shopkori/assistant-platform/internal/handler"
	"github.com/shopkori/assistant-platform/internal/locale"
	"github.com/shopkori/assistant-platform/internal/middleware"
	"github.com/shopkori/assistant-platform/internal/session"
	"github.com/shopkori/assistant-platform/pkg/logger"
	"github.com/shopkori/assistant-platform/pkg/tracing"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	log.Info("starting API server")

	// Initialize tracing if enabled
	ctx := context.Background()
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(ctx, "assistant-platform", cfg.TracingEndpoint)
		if err != nil {
			log.Warn("failed to initialize tracing", zap.Error(err))
		} else {
			defer tracing.Shutdown(ctx, tp)
		}
	}

	// Connect to NATS when configured; transcripts are simply not
	// published otherwise.
	var publisher events.Publisher = events.NoopPublisher{}
	var eventsClient *events.Client
	if cfg.NATSURL != "" {
		eventsClient, err = events.Connect(events.Config{
			URL:      cfg.NATSURL,
			CAFile:   cfg.NATSCAFile,
			CertFile: cfg.NATSCertFile,
			KeyFile:  cfg.NATSKeyFile,
			Token:    cfg.NATSToken,
		}, log)
		if err != nil {
			log.Error("failed to connect to NATS", zap.Error(err))
			os.Exit(1)
		}
		defer eventsClient.Close()

		js := events.NewJetStreamPublisher(eventsClient, log)
		if err := js.EnsureStream(ctx); err != nil {
			log.Error("failed to ensure stream", zap.Error(err))
			os.Exit(1)
		}
		publisher = js
	} else {
		log.Info("NATS not configured, transcript publishing disabled")
	}

	// Storefront catalog client
	catalogClient := catalog.NewClient(cfg.BackendBaseURL, cfg.BackendTimeout, log)

	// Session registry with background idle sweeping
	defaultLocale, err := locale.Parse(cfg.DefaultLocale)
	if err != nil {
		log.Warn("unsupported default locale, falling back to English",
			zap.String("locale", cfg.DefaultLocale))
		defaultLocale = locale.English
	}
	registry := session.NewRegistry(catalogClient, publisher, session.RegistryConfig{
		DefaultLocale:   defaultLocale,
		IdleTTL:         cfg.SessionIdleTTL,
		ResponseTimeout: cfg.ResponseTimeout,
	}, log)

	sweepCtx, stopSweeper := context.WithCancel(ctx)
	defer stopSweeper()
	go registry.StartSweeper(sweepCtx, time.Minute)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(eventsClient, registry)
	chatHandler := handler.NewChatHandler(registry, log)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(middleware.SecurityHeaders)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"Link", "X-Correlation-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health endpoints (no auth required)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// API routes; guests are welcome, so auth is optional
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.OptionalAuth(cfg.JWTSecret))
		r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))

		r.Route("/chat/sessions", func(r chi.Router) {
			r.Post("/", chatHandler.Create)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", chatHandler.Get)
				r.Delete("/", chatHandler.Delete)
				r.Post("/messages", chatHandler.Submit)
				r.Post("/toggle", chatHandler.Toggle)
				r.Post("/clear", chatHandler.Clear)
				r.Put("/locale", chatHandler.SetLocale)
			})
		})
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("server listening", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
