package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// maxLoggedBody caps how much of a request body gets captured for logging.
const maxLoggedBody = 4 << 10

// Logger logs method, path, status and duration for every request. Request
// bodies are logged best-effort at debug level; a body that cannot be read
// never affects request handling.
func Logger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			if log.Enabled(r.Context(), slog.LevelDebug) && r.Body != nil {
				body, err := io.ReadAll(io.LimitReader(r.Body, maxLoggedBody))
				if err == nil {
					r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(body), r.Body))
					if len(body) > 0 {
						log.DebugContext(r.Context(), "request body", "body", string(body))
					}
				} else {
					log.DebugContext(r.Context(), "could not log request body")
				}
			}

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			log.InfoContext(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", GetRequestID(r.Context()),
			)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
