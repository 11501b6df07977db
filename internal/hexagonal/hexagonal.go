// Package hexagonal assembles the ports-and-adapters variant: the domain
// sits inside the hexagon, the application service implements the driver
// port, and the adapters plug in from outside.
package hexagonal

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"userarch/internal/hexagonal/adapters"
	"userarch/internal/hexagonal/application"
	"userarch/internal/platform/metrics"
	"userarch/internal/platform/middleware"
)

// Version identifies this variant on the /version endpoint.
const Version = adapters.Version

// NewRouter wires the driven repository adapter, the application service
// and the driver HTTP adapter behind the standard middleware chain.
func NewRouter(logger *slog.Logger, m *metrics.Metrics) chi.Router {
	repo := adapters.NewInMemoryUserRepository()
	svc := application.New(repo, application.WithLogger(logger), application.WithMetrics(m))
	api := adapters.NewHTTPAPI(svc, logger)

	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	api.Register(r)
	if m != nil {
		r.Handle("/metrics", m.Handler())
	}
	return r
}
