package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/avolkov/voyageplan-go/internal/domain/shared"
)

func (h *Handlers) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Errorf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeDomainError maps typed domain errors onto HTTP status codes. Anything
// unrecognized is an internal error with the detail kept out of the response.
func (h *Handlers) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case shared.IsNotFound(err):
		h.writeError(w, r, http.StatusNotFound, err.Error())
	case shared.IsValidation(err):
		h.writeError(w, r, http.StatusBadRequest, err.Error())
	default:
		h.logger.Errorf("request failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
		h.writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// decodeBody parses a single JSON object request body.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
