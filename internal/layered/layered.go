// Package layered assembles the layered variant: models, repository,
// service and controller stacked top to bottom, each layer talking only to
// the one beneath it.
package layered

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"userarch/internal/layered/controller"
	"userarch/internal/layered/repository"
	"userarch/internal/layered/service"
	"userarch/internal/platform/metrics"
	"userarch/internal/platform/middleware"
)

// Version identifies this variant on the /version endpoint.
const Version = controller.Version

// Service orchestrates user operations.
type Service = service.Service

// NewRouter wires a fresh repository, service and controller behind the
// standard middleware chain.
func NewRouter(logger *slog.Logger, m *metrics.Metrics) chi.Router {
	repo := repository.NewInMemoryUserRepository()
	svc := service.New(repo, service.WithLogger(logger), service.WithMetrics(m))
	ctrl := controller.New(svc, logger)

	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	ctrl.Register(r)
	if m != nil {
		r.Handle("/metrics", m.Handler())
	}
	return r
}
