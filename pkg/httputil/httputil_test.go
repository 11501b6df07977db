package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"userarch/pkg/apperrors"
)

func TestWriteError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation maps to 400", apperrors.New(apperrors.CodeValidation, "Invalid email format"), http.StatusBadRequest, "Invalid email format"},
		{"not found maps to 404", apperrors.New(apperrors.CodeNotFound, "User not found"), http.StatusNotFound, "User not found"},
		{"storage maps to 500", apperrors.New(apperrors.CodeStorage, "db failed"), http.StatusInternalServerError, "db failed"},
		{"untagged maps to 500", errors.New("boom"), http.StatusInternalServerError, "boom"},
		{"empty message normalized", errors.New(""), http.StatusInternalServerError, "Unknown error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tc.err)

			if w.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Fatalf("expected application/json, got %q", ct)
			}

			var body map[string]string
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if body["error"] != tc.message {
				t.Fatalf("expected error %q, got %q", tc.message, body["error"])
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSON(w, http.StatusCreated, map[string]string{"status": "healthy"})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["status"] != "healthy" {
		t.Fatalf("unexpected body: %v", body)
	}
}
