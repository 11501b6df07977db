package middleware

import (
	"log/slog"
	"net/http"

	"userarch/pkg/apperrors"
	"userarch/pkg/httputil"
)

// Recovery converts panics into 500 responses with the standard error
// envelope instead of tearing down the connection.
func Recovery(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.ErrorContext(r.Context(), "panic recovered",
						"panic", rec,
						"path", r.URL.Path,
						"request_id", GetRequestID(r.Context()),
					)
					httputil.WriteError(w, apperrors.New(apperrors.CodeInternal, "Unknown error"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
