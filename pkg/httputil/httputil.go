// Package httputil centralizes JSON response writing so every variant emits
// the same envelopes and status mapping.
package httputil

import (
	"encoding/json"
	"net/http"

	"userarch/pkg/apperrors"
)

// WriteJSON writes v as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a tagged error into the wire envelope
// {"error": message}. Untagged errors are normalized first so the body
// never leaks internals and never goes out empty.
func WriteError(w http.ResponseWriter, err error) {
	e := apperrors.Normalize(err)
	WriteJSON(w, StatusFor(e.Code), map[string]string{"error": e.Message})
}

// StatusFor maps error codes to HTTP statuses. Adapters switch on code,
// never on message content.
func StatusFor(code apperrors.Code) int {
	switch code {
	case apperrors.CodeValidation:
		return http.StatusBadRequest
	case apperrors.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
