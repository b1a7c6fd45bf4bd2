package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dan9191/custlysis-dashboard/internal/config"
	"github.com/Dan9191/custlysis-dashboard/internal/handler"
	"github.com/Dan9191/custlysis-dashboard/internal/health"
	"github.com/Dan9191/custlysis-dashboard/internal/integrations/backend"
	"github.com/Dan9191/custlysis-dashboard/internal/middleware"
	"github.com/Dan9191/custlysis-dashboard/internal/repository"
	"github.com/Dan9191/custlysis-dashboard/internal/service"
	"github.com/Dan9191/custlysis-dashboard/internal/snapshot"
	"github.com/Dan9191/custlysis-dashboard/internal/view"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize snapshot store
	store, err := newStore(ctx, cfg)
	if err != nil {
		logger.Fatalf("Failed to initialize snapshot store: %v", err)
	}
	defer store.Close()

	// Initialize layers
	api := backend.NewClient(cfg, logger)
	repo := repository.NewRepository(api)
	svc := service.NewService(repo, store, logger)

	renderer, err := view.NewRenderer()
	if err != nil {
		logger.Fatalf("Failed to parse templates: %v", err)
	}

	prober, err := health.NewProber(api, cfg.HealthProbeSchedule, cfg.RequestTimeout, logger)
	if err != nil {
		logger.Fatalf("Failed to schedule health probe: %v", err)
	}
	prober.Check(ctx)
	prober.Start()
	defer prober.Stop()

	h := handler.NewHandler(svc, renderer, prober, logger)

	// Setup router
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.PathPrefix("/static/").Handler(view.Static())

	pages := r.PathPrefix("/").Subrouter()
	pages.Use(middleware.RequestID, middleware.Logging(logger), middleware.Metrics, middleware.Session(cfg.SessionCookie))
	h.Register(pages, cfg.EnableTransactionExport)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 10*time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("Shutdown failed: %v", err)
		}
	}()

	logger.WithFields(logrus.Fields{
		"backend":  cfg.BackendURL,
		"snapshot": cfg.SnapshotStore,
	}).Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
	logger.Info("Server stopped")
}

func newStore(ctx context.Context, cfg *config.Config) (snapshot.Store, error) {
	if cfg.SnapshotStore != config.SnapshotStoreRedis {
		return snapshot.NewMemoryStore(cfg.SnapshotTTL), nil
	}
	store := snapshot.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.SnapshotTTL)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.RedisAddr, err)
	}
	return store, nil
}
