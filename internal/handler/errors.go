package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pkordes/travel-planner/internal/domain"
)

// errorResponse is the JSON body of every non-redirect failure.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

// handledByController reports whether err is a failure the controller has
// already surfaced (alert, log) so the request still ends in a redirect.
func handledByController(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrMissingElement)
}
