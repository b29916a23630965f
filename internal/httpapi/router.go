package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(d Deps) http.Handler {
	rateLimit := d.RateLimitPerMinute
	if rateLimit <= 0 {
		rateLimit = 120
	}
	agentTimeout := d.AgentTimeout
	if agentTimeout <= 0 {
		agentTimeout = 60 * time.Second
	}

	s := server{
		status:      d.Status,
		chatAgent:   d.ChatAgent,
		searchAgent: d.SearchAgent,
		log:         d.Log,

		corsAllowedOrigins: d.CORSAllowedOrigins,
		agentTimeout:       agentTimeout,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLogMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(middleware.RealIP)
	r.Use(s.recoverMiddleware)
	r.Use(newIPRateLimiter(rateLimit, time.Minute).middleware)
	r.Use(middleware.Heartbeat("/healthz"))

	r.Route("/api", func(r chi.Router) {
		r.Get("/", s.handleRoot)

		r.Post("/status", s.handleCreateStatusCheck)
		r.Get("/status", s.handleListStatusChecks)

		r.Post("/chat", s.handleChat)
		r.Post("/search", s.handleSearch)
		r.Get("/agents/capabilities", s.handleAgentCapabilities)

		r.Post("/wallpaper/generate", s.handleGenerateWallpaper)
	})

	return r
}
