// Package agent defines the boundary to the AI backends that answer chat and
// search requests, plus the Gemini-backed implementation.
package agent

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by every Execute call on an executor that was
// built without backend credentials. The service still boots and serves the
// rest of the API; only agent calls fail.
var ErrNotConfigured = errors.New("agent backend not configured")

// Result is what an executor produced for one instruction.
type Result struct {
	Content  string
	Metadata map[string]any
}

// Executor runs a single natural-language instruction against an AI backend.
type Executor interface {
	Execute(ctx context.Context, message string, useTools bool) (Result, error)
	Capabilities() []string
}

// Kind selects the agent persona and capability set.
type Kind string

const (
	KindChat   Kind = "chat"
	KindSearch Kind = "search"
)

var capabilitiesByKind = map[Kind][]string{
	KindChat:   {"conversation", "analysis", "summarization", "general_assistance"},
	KindSearch: {"web_search", "research", "summarization", "source_citation"},
}
