package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ariefcatur/simple-shop/internal/apperr"
	"github.com/ariefcatur/simple-shop/internal/logger"
	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the error kind to a status. Storage failures are logged
// and their cause is not echoed to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperr.HTTPStatus(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", err)
		msg = "internal error"
	}
	writeJSON(w, code, map[string]string{"error": msg})
}

func notFound(w http.ResponseWriter, what string) {
	writeJSON(w, http.StatusNotFound, map[string]string{"error": what + " not found"})
}

func pathID(r *http.Request, name string) (int64, error) {
	s := chi.URLParam(r, name)
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, apperr.Validation("invalid %s %q", name, s)
	}
	return id, nil
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Validation("invalid json: %v", err)
	}
	return nil
}
