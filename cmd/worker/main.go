package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"agentsapi/internal/config"
	"agentsapi/internal/db"
	"agentsapi/internal/logging"
	"agentsapi/internal/status"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.AppEnv)

	pool, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("db")
	}
	defer pool.Close()

	store := status.NewPG(pool)
	retention := time.Duration(cfg.StatusRetentionDays) * 24 * time.Hour

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(time.Duration(cfg.WorkerTickSeconds) * time.Second)
	defer ticker.Stop()

	logger.Info().
		Int("tick_seconds", cfg.WorkerTickSeconds).
		Int("retention_days", cfg.StatusRetentionDays).
		Msg("worker started")

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("worker stopping")
			return
		case <-ticker.C:
			sweepCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			deleted, err := store.DeleteOlderThan(sweepCtx, time.Now().UTC().Add(-retention))
			cancel()
			if err != nil {
				logger.Error().Err(err).Msg("status retention sweep failed")
				continue
			}
			if deleted > 0 {
				logger.Info().Int64("deleted", deleted).Msg("status retention sweep")
			}
		}
	}
}
