package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tgrera-complaint-form/internal/api"
	"tgrera-complaint-form/internal/common/config"
	"tgrera-complaint-form/internal/common/database"
	"tgrera-complaint-form/internal/common/logger"
	"tgrera-complaint-form/internal/common/observability"
	"tgrera-complaint-form/internal/complaint/complaintid"
	"tgrera-complaint-form/internal/session"

	"github.com/prometheus/client_golang/prometheus"
)

// retryWithBackoff runs operation until it succeeds, doubling the delay
// between attempts.
func retryWithBackoff(ctx context.Context, operation func() error, maxRetries int, initialDelay time.Duration, log logger.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		if err = operation(); err == nil {
			return nil
		}
		if i == maxRetries-1 {
			break
		}
		log.Warn(operationName+" failed, retrying", map[string]interface{}{
			"error":       err.Error(),
			"attempt":     i + 1,
			"maxRetries":  maxRetries,
			"nextRetryIn": delay.String(),
		})
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func runServe(parent context.Context, configPath string) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return codeError(3, "loading config: %s", err)
	}

	log := logger.FromConfig(cfg.Logging)
	log.Info("starting complaint form service", cfg.Summary())

	obs := observability.New(cfg.Metrics.ServiceName)
	defer obs.Shutdown()

	var (
		registry complaintid.Registry = complaintid.NewMemoryRegistry()
		ready    api.ReadyCheck
	)
	if cfg.Redis.Enabled {
		rdb := database.NewRedis(cfg.Redis)
		defer rdb.Close()

		if err := retryWithBackoff(ctx, func() error { return rdb.Ping(ctx) }, 5, time.Second, log, "redis connection"); err != nil {
			return err
		}
		log.Info("redis connected", map[string]interface{}{"address": cfg.Redis.Address})
		if cfg.Metrics.Enabled {
			if err := rdb.RegisterPoolMetrics(prometheus.DefaultRegisterer); err != nil {
				log.Warn("redis pool metrics not registered", map[string]interface{}{"error": err.Error()})
			}
		}
		registry = complaintid.NewRedisRegistry(rdb.Client, cfg.Redis.KeyPrefix)
		ready = rdb.Ping
	}

	factory, err := newFactory(cfg, registry, obs, log)
	if err != nil {
		return err
	}

	ttl := config.GetDuration(cfg.Server.SessionTTL)
	store := session.NewStore(factory, ttl, log)
	go store.Run(ctx, time.Minute)

	pres := factory.Presenter
	handlers := api.NewHandlers(store, pres, cfg.Server.SessionCookie, ttl, ready, log)
	srv := api.NewServer(cfg, handlers, log)
	srv.SetupRoutes()

	if err := srv.Run(ctx); err != nil {
		log.Error("server stopped with error", map[string]interface{}{"error": err.Error()})
		return err
	}
	log.Info("server stopped", nil)
	return nil
}
