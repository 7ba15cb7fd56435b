package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"school-activities/internal/api"
	"school-activities/internal/cache"
	"school-activities/internal/common/config"
	"school-activities/internal/common/logger"
	"school-activities/internal/common/observability"
	"school-activities/internal/notify"
	"school-activities/internal/registry"
	"school-activities/pkg/catalog"
)

// retryWithBackoff attempts to execute a function with exponential backoff.
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting activity server...",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Seed catalog ---
	seed := catalog.Default()
	if cfg.Seed.File != "" {
		seed, err = catalog.Load(cfg.Seed.File)
		if err != nil {
			zapLog.Fatal("seed catalog load failed", zap.Error(err))
		}
		zapLog.Info("Seed catalog loaded from file",
			zap.String("file", cfg.Seed.File),
			zap.Int("activities", len(seed)),
		)
	}
	reg := registry.New(seed)

	opts := []api.Option{
		api.WithObservability(obs),
		api.WithStaticDir(cfg.Server.StaticDir),
	}

	// --- Optional Redis snapshot cache ---
	if cfg.Cache.Enabled {
		snapshotCache := cache.New(cfg.Cache)
		err = retryWithBackoff(func() error {
			return snapshotCache.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer snapshotCache.Close()
		zapLog.Info("Redis snapshot cache connected")
		opts = append(opts, api.WithCache(snapshotCache))
	}

	// --- Optional SES confirmation emails ---
	if cfg.Notifications.Enabled {
		notifier, err := notify.NewSES(ctx, cfg.Notifications, log)
		if err != nil {
			zapLog.Fatal("ses notifier init failed", zap.Error(err))
		}
		zapLog.Info("SES confirmation emails enabled", zap.String("sender", cfg.Notifications.Sender))
		opts = append(opts, api.WithNotifier(notifier))
	}

	server := api.NewServer(reg, log, opts...)

	// Admin endpoint: pprof (blank import), prometheus metrics, liveness.
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"status":"healthy"}`)
		})
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.MetricsPort)
		zapLog.Info("Admin server listening", zap.String("addr", addr))
		if err := http.ListenAndServe(addr, nil); err != nil {
			zapLog.Error("admin server failed", zap.Error(err))
		}
	}()

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      server.Handler(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zapLog.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
	zapLog.Info("Server stopped")
}
