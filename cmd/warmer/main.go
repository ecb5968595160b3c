package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/rickgao/eve-appraisal/internal/app"
	"github.com/rickgao/eve-appraisal/internal/config"
	"github.com/rickgao/eve-appraisal/internal/version"
	"github.com/rickgao/eve-appraisal/internal/warmer"
)

func main() {
	configPath := flag.String("config", "configs/warmer.local.yaml", "path to config file")
	envFile := flag.String("env", ".env", "optional dotenv file loaded before the config")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "load %s: %v\n", *envFile, err)
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Set up structured logging
	logger := cfg.Log.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	logger.Info("starting warmer",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	if len(cfg.Warmer.TypeIDs) == 0 {
		logger.Warn("warmer.type_ids is empty, only purging expired entries")
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	logger.Info("pricing ready",
		"cache", cfg.Cache.Backend,
		"providers", len(a.Providers),
	)

	w := warmer.New(
		warmer.Config{
			Interval:    cfg.Warmer.Interval,
			Concurrency: cfg.Warmer.Concurrency,
			Timeout:     cfg.Warmer.Timeout,
		},
		a.Refresh,
		a.Prices,
		app.Scopes(cfg.Warmer.Markets),
		cfg.Warmer.TypeIDs,
		logger,
	)

	healthServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Health.Port),
		Handler: createHealthHandler(cfg.Health.Path, a, w),
	}

	go func() {
		logger.Info("starting health server", "port", cfg.Health.Port)
		if err := healthServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("health server error", "error", err)
		}
	}()

	if err := w.Start(ctx); err != nil {
		logger.Error("failed to start warmer", "error", err)
		os.Exit(1)
	}

	logger.Info("warmer running",
		"markets", len(cfg.Warmer.Markets),
		"types", len(cfg.Warmer.TypeIDs),
		"health_url", fmt.Sprintf("http://localhost:%d%s", cfg.Health.Port, cfg.Health.Path),
	)

	// Wait for shutdown
	<-ctx.Done()

	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := w.Stop(shutdownCtx); err != nil {
		logger.Warn("warmer did not stop in time", "error", err)
	}
	healthServer.Shutdown(shutdownCtx)

	logger.Info("warmer stopped")
}

// createHealthHandler creates the HTTP handler for health checks.
func createHealthHandler(path string, a *app.App, w *warmer.Warmer) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc(path, func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		health := struct {
			Status     string         `json:"status"`
			Version    string         `json:"version"`
			Components map[string]any `json:"components"`
		}{
			Status:     "healthy",
			Version:    version.Version,
			Components: make(map[string]any),
		}

		// Check cache database
		if err := a.Ping(ctx); err != nil {
			health.Status = "unhealthy"
			health.Components["cache"] = map[string]string{
				"status": "disconnected",
				"error":  err.Error(),
			}
		} else {
			health.Components["cache"] = "connected"
		}

		stats := w.Stats()
		health.Components["warmer"] = stats
		if stats.Cycles > 0 && stats.Resolved == 0 && stats.Missing > 0 {
			health.Status = "degraded"
		}

		rw.Header().Set("Content-Type", "application/json")
		if health.Status == "unhealthy" {
			rw.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(rw).Encode(health)
	})

	return mux
}
