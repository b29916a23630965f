package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	HTTPAddr    string
	AppEnv      string

	GeminiAPIKey        string
	GeminiModel         string
	AgentTimeoutSeconds int

	CORSAllowedOrigins []string
	RateLimitPerMinute int

	StatusRetentionDays int
	WorkerTickSeconds   int
}

func Load() (Config, error) {
	// Optional: load local .env for development. Missing file is fine.
	_ = godotenv.Load()

	agentTimeout := getenvIntDefault("AGENTSAPI_AGENT_TIMEOUT_SECONDS", 60)
	if agentTimeout < 5 {
		agentTimeout = 5
	}

	rateLimit := getenvIntDefault("AGENTSAPI_RATE_LIMIT_PER_MINUTE", 120)
	if rateLimit < 1 {
		rateLimit = 1
	}

	retentionDays := getenvIntDefault("AGENTSAPI_STATUS_RETENTION_DAYS", 30)
	if retentionDays < 1 {
		retentionDays = 1
	}

	workerTick := getenvIntDefault("AGENTSAPI_WORKER_TICK_SECONDS", 3600)
	if workerTick < 60 {
		workerTick = 60
	}

	cfg := Config{
		DatabaseURL: os.Getenv("AGENTSAPI_DATABASE_URL"),
		HTTPAddr:    getenvDefault("AGENTSAPI_HTTP_ADDR", ":8080"),
		AppEnv:      getenvDefault("AGENTSAPI_APP_ENV", "production"),

		GeminiAPIKey:        strings.TrimSpace(os.Getenv("AGENTSAPI_GEMINI_API_KEY")),
		GeminiModel:         getenvDefault("AGENTSAPI_GEMINI_MODEL", "gemini-2.0-flash"),
		AgentTimeoutSeconds: agentTimeout,

		CORSAllowedOrigins: getenvCSV("AGENTSAPI_CORS_ALLOWED_ORIGINS"),
		RateLimitPerMinute: rateLimit,

		StatusRetentionDays: retentionDays,
		WorkerTickSeconds:   workerTick,
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("AGENTSAPI_DATABASE_URL is required")
	}
	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvIntDefault(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvCSV(key string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}

	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	seen := map[string]struct{}{}
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
