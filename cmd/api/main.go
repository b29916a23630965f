package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"agentsapi/internal/agent"
	"agentsapi/internal/config"
	"agentsapi/internal/db"
	"agentsapi/internal/httpapi"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	chatAgent, err := agent.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, agent.KindChat)
	if err != nil {
		logger.Fatal().Err(err).Msg("chat agent")
	}
	searchAgent, err := agent.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, agent.KindSearch)
	if err != nil {
		logger.Fatal().Err(err).Msg("search agent")
	}
	if cfg.GeminiAPIKey == "" {
		logger.Warn().Msg("AGENTSAPI_GEMINI_API_KEY unset; agent endpoints will report failures")
	}

	srv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: httpapi.NewRouter(httpapi.Deps{
			Status:      status.NewPG(pool),
			ChatAgent:   chatAgent,
			SearchAgent: searchAgent,
			Log:         logger,

			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			RateLimitPerMinute: cfg.RateLimitPerMinute,
			AgentTimeout:       time.Duration(cfg.AgentTimeoutSeconds) * time.Second,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("api listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
