package httpapi

import (
	"time"

	"github.com/rs/zerolog"

	"agentsapi/internal/agent"
	"agentsapi/internal/status"
)

type Deps struct {
	Status      status.Store
	ChatAgent   agent.Executor
	SearchAgent agent.Executor
	Log         zerolog.Logger

	CORSAllowedOrigins []string
	RateLimitPerMinute int
	AgentTimeout       time.Duration
}
