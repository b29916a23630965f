package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"agentsapi/internal/agent"
)

const searchPromptFormat = "Search for information about: %s. Provide a comprehensive summary with key findings."

type chatRequestDTO struct {
	Message   string         `json:"message"`
	AgentType string         `json:"agent_type"`
	Context   map[string]any `json:"context"`
}

type chatResponseDTO struct {
	Success      bool           `json:"success"`
	Response     string         `json:"response"`
	AgentType    string         `json:"agent_type"`
	Capabilities []string       `json:"capabilities"`
	Metadata     map[string]any `json:"metadata"`
	Error        string         `json:"error,omitempty"`
}

type searchRequestDTO struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type searchResponseDTO struct {
	Success       bool           `json:"success"`
	Query         string         `json:"query"`
	Summary       string         `json:"summary"`
	SearchResults map[string]any `json:"search_results,omitempty"`
	SourcesCount  int            `json:"sources_count"`
	Error         string         `json:"error,omitempty"`
}

// executorFor maps the wire agent_type to an executor. Anything that is not
// "search" gets the chat agent, matching the original selection behavior.
func (s server) executorFor(agentType string) agent.Executor {
	if agentType == "search" {
		return s.searchAgent
	}
	return s.chatAgent
}

func (s server) handleChat(w http.ResponseWriter, r *http.Request) {
	in := chatRequestDTO{AgentType: "chat"}
	if !readJSONLimited(w, r, &in, maxRequestBodyBytes) {
		return
	}

	ex := s.executorFor(in.AgentType)

	ctx, cancel := context.WithTimeout(r.Context(), s.agentTimeout)
	defer cancel()

	res, err := ex.Execute(ctx, in.Message, false)
	if err != nil {
		s.logError(r.Context(), "chat agent execute failed", err)
		writeJSON(w, http.StatusOK, chatResponseDTO{
			Success:      false,
			Response:     "",
			AgentType:    in.AgentType,
			Capabilities: []string{},
			Metadata:     map[string]any{},
			Error:        err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, chatResponseDTO{
		Success:      true,
		Response:     res.Content,
		AgentType:    in.AgentType,
		Capabilities: ex.Capabilities(),
		Metadata:     res.Metadata,
	})
}

func (s server) handleSearch(w http.ResponseWriter, r *http.Request) {
	in := searchRequestDTO{MaxResults: 5}
	if !readJSONLimited(w, r, &in, maxRequestBodyBytes) {
		return
	}

	prompt := fmt.Sprintf(searchPromptFormat, in.Query)

	ctx, cancel := context.WithTimeout(r.Context(), s.agentTimeout)
	defer cancel()

	res, err := s.searchAgent.Execute(ctx, prompt, true)
	if err != nil {
		s.logError(r.Context(), "search agent execute failed", err)
		writeJSON(w, http.StatusOK, searchResponseDTO{
			Success:      false,
			Query:        in.Query,
			Summary:      "",
			SourcesCount: 0,
			Error:        err.Error(),
		})
		return
	}

	sources := 0
	if n, ok := res.Metadata["tools_used"].(int); ok {
		sources = n
	}

	writeJSON(w, http.StatusOK, searchResponseDTO{
		Success:       true,
		Query:         in.Query,
		Summary:       res.Content,
		SearchResults: res.Metadata,
		SourcesCount:  sources,
	})
}

func (s server) handleAgentCapabilities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"capabilities": map[string]any{
			"search_agent": s.searchAgent.Capabilities(),
			"chat_agent":   s.chatAgent.Capabilities(),
		},
	})
}
