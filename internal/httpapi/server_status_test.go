package httpapi

import (
	"net/http"
	"testing"
	"time"
)

func TestCreateStatusCheck(t *testing.T) {
	store := &stubStore{}
	h := newTestRouter(t, Deps{Status: store})

	rec := doJSON(t, h, http.MethodPost, "/api/status", map[string]string{"client_name": "ios-app"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		ID         string    `json:"id"`
		ClientName string    `json:"client_name"`
		Timestamp  time.Time `json:"timestamp"`
	}
	decodeBody(t, rec, &body)
	if body.ID == "" {
		t.Error("id missing in response")
	}
	if body.ClientName != "ios-app" {
		t.Errorf("client_name = %q, want ios-app", body.ClientName)
	}
	if body.Timestamp.IsZero() {
		t.Error("timestamp missing in response")
	}

	if len(store.checks) != 1 {
		t.Fatalf("stored %d checks, want 1", len(store.checks))
	}
	if store.checks[0].ClientName != "ios-app" {
		t.Errorf("stored client_name = %q", store.checks[0].ClientName)
	}
}

func TestCreateStatusCheckRequiresClientName(t *testing.T) {
	h := newTestRouter(t, Deps{})

	rec := doJSON(t, h, http.MethodPost, "/api/status", map[string]string{"client_name": "  "})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCreateStatusCheckStoreError(t *testing.T) {
	h := newTestRouter(t, Deps{Status: &stubStore{insErr: errStub}})

	rec := doJSON(t, h, http.MethodPost, "/api/status", map[string]string{"client_name": "x"})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestListStatusChecks(t *testing.T) {
	store := &stubStore{}
	h := newTestRouter(t, Deps{Status: store})

	for _, name := range []string{"a", "b", "c"} {
		rec := doJSON(t, h, http.MethodPost, "/api/status", map[string]string{"client_name": name})
		if rec.Code != http.StatusOK {
			t.Fatalf("create %q: status = %d", name, rec.Code)
		}
	}

	rec := doJSON(t, h, http.MethodGet, "/api/status", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body []struct {
		ClientName string `json:"client_name"`
	}
	decodeBody(t, rec, &body)
	if len(body) != 3 {
		t.Fatalf("len = %d, want 3", len(body))
	}
	for i, name := range []string{"a", "b", "c"} {
		if body[i].ClientName != name {
			t.Errorf("body[%d].client_name = %q, want %q", i, body[i].ClientName, name)
		}
	}
}

func TestListStatusChecksStoreError(t *testing.T) {
	h := newTestRouter(t, Deps{Status: &stubStore{listErr: errStub}})

	rec := doJSON(t, h, http.MethodGet, "/api/status", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestListStatusChecksEmpty(t *testing.T) {
	h := newTestRouter(t, Deps{})

	rec := doJSON(t, h, http.MethodGet, "/api/status", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	// Empty list, not null.
	if got := rec.Body.String(); got != "[]\n" {
		t.Errorf("body = %q, want []", got)
	}
}
