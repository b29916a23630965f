package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const (
	chatInstruction = "You are a helpful conversational assistant. Answer clearly and concisely."

	searchInstruction = "You are a research assistant. Ground your answers in web search " +
		"results when available and summarize the key findings with their sources."
)

// Gemini is an Executor backed by the Gemini API. A Gemini built without an
// API key is disabled: it reports capabilities normally but every Execute
// returns ErrNotConfigured.
type Gemini struct {
	client *genai.Client
	model  string
	kind   Kind
}

func NewGemini(ctx context.Context, apiKey, model string, kind Kind) (*Gemini, error) {
	g := &Gemini{model: model, kind: kind}
	if apiKey == "" {
		return g, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	g.client = client
	return g, nil
}

func (g *Gemini) Execute(ctx context.Context, message string, useTools bool) (Result, error) {
	if g.client == nil {
		return Result{}, ErrNotConfigured
	}

	instruction := chatInstruction
	if g.kind == KindSearch {
		instruction = searchInstruction
	}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
	}
	if useTools && g.kind == KindSearch {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(message), cfg)
	if err != nil {
		return Result{}, fmt.Errorf("generate content: %w", err)
	}

	md := map[string]any{
		"model":      g.model,
		"tools_used": 0,
	}
	if usage := resp.UsageMetadata; usage != nil {
		md["prompt_tokens"] = int(usage.PromptTokenCount)
		md["response_tokens"] = int(usage.CandidatesTokenCount)
		md["total_tokens"] = int(usage.TotalTokenCount)
	}
	if len(resp.Candidates) > 0 {
		if gm := resp.Candidates[0].GroundingMetadata; gm != nil {
			md["tools_used"] = len(gm.GroundingChunks)
			if len(gm.WebSearchQueries) > 0 {
				md["search_queries"] = gm.WebSearchQueries
			}
		}
	}

	return Result{Content: resp.Text(), Metadata: md}, nil
}

func (g *Gemini) Capabilities() []string {
	return capabilitiesByKind[g.kind]
}
