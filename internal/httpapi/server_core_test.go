package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"agentsapi/internal/agent"
	"agentsapi/internal/status"
)

type stubStore struct {
	mu      sync.Mutex
	checks  []status.Check
	insErr  error
	listErr error
}

func (s *stubStore) Insert(ctx context.Context, c status.Check) error {
	if s.insErr != nil {
		return s.insErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checks = append(s.checks, c)
	return nil
}

func (s *stubStore) ListAll(ctx context.Context) ([]status.Check, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]status.Check(nil), s.checks...), nil
}

type stubExecutor struct {
	content      string
	metadata     map[string]any
	err          error
	capabilities []string

	mu          sync.Mutex
	lastMessage string
	lastTools   bool
}

func (s *stubExecutor) Execute(ctx context.Context, message string, useTools bool) (agent.Result, error) {
	s.mu.Lock()
	s.lastMessage = message
	s.lastTools = useTools
	s.mu.Unlock()
	if s.err != nil {
		return agent.Result{}, s.err
	}
	return agent.Result{Content: s.content, Metadata: s.metadata}, nil
}

func (s *stubExecutor) Capabilities() []string {
	return s.capabilities
}

func newTestRouter(t *testing.T, d Deps) http.Handler {
	t.Helper()
	if d.Status == nil {
		d.Status = &stubStore{}
	}
	if d.ChatAgent == nil {
		d.ChatAgent = &stubExecutor{capabilities: []string{"conversation"}}
	}
	if d.SearchAgent == nil {
		d.SearchAgent = &stubExecutor{capabilities: []string{"web_search"}}
	}
	d.Log = zerolog.Nop()
	if d.AgentTimeout == 0 {
		d.AgentTimeout = 5 * time.Second
	}
	return NewRouter(d)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(dst); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestRoot(t *testing.T) {
	h := newTestRouter(t, Deps{})
	rec := doJSON(t, h, http.MethodGet, "/api/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["message"] != "Hello World" {
		t.Errorf(`message = %q, want "Hello World"`, body["message"])
	}
}

func TestMalformedJSONRejected(t *testing.T) {
	h := newTestRouter(t, Deps{})
	req := httptest.NewRequest(http.MethodPost, "/api/wallpaper/generate", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["error"] != "invalid json" {
		t.Errorf(`error = %q, want "invalid json"`, body["error"])
	}
}

var errStub = errors.New("stub failure")
