package httpapi

import (
	"fmt"
	"net/http"
)

// recoverMiddleware is the single boundary that translates an uncaught fault
// into the wire's failure shape. Handlers themselves never panic on bad
// input; this catches programming errors and collaborator surprises.
func (s server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				s.logError(r.Context(), "panic in handler", fmt.Errorf("%v", rec))
				writeJSON(w, http.StatusInternalServerError, map[string]any{
					"success": false,
					"error":   "internal server error",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
