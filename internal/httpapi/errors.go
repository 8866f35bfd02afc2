package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"flipd/internal/slotpool"
	"flipd/pkg/types"
)

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// statusFor maps pool errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case slotpool.IsInvalidConfig(err), slotpool.IsInvalidTarget(err):
		return http.StatusBadRequest
	case slotpool.IsEmptySequence(err):
		return http.StatusConflict
	case slotpool.IsInconsistentSlot(err):
		return http.StatusInternalServerError
	}
	var he HTTPError
	if errors.As(err, &he) {
		return he.StatusCode()
	}
	return http.StatusInternalServerError
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}
