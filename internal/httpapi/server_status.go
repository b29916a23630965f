package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"agentsapi/internal/status"
)

type statusCheckCreateDTO struct {
	ClientName string `json:"client_name"`
}

type statusCheckDTO struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

func statusCheckToDTO(c status.Check) statusCheckDTO {
	return statusCheckDTO{
		ID:         c.ID.String(),
		ClientName: c.ClientName,
		Timestamp:  c.CreatedAt,
	}
}

func (s server) handleCreateStatusCheck(w http.ResponseWriter, r *http.Request) {
	var in statusCheckCreateDTO
	if !readJSONLimited(w, r, &in, maxRequestBodyBytes) {
		return
	}
	if strings.TrimSpace(in.ClientName) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "client_name is required"})
		return
	}

	check := status.Check{
		ID:         uuid.New(),
		ClientName: in.ClientName,
		CreatedAt:  time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if err := s.status.Insert(ctx, check); err != nil {
		s.logError(r.Context(), "insert status check failed", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "insert failed"})
		return
	}

	writeJSON(w, http.StatusOK, statusCheckToDTO(check))
}

func (s server) handleListStatusChecks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks, err := s.status.ListAll(ctx)
	if err != nil {
		s.logError(r.Context(), "list status checks failed", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "list failed"})
		return
	}

	out := make([]statusCheckDTO, 0, len(checks))
	for _, c := range checks {
		out = append(out, statusCheckToDTO(c))
	}
	writeJSON(w, http.StatusOK, out)
}
