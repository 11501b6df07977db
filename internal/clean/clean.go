// Package clean assembles the clean-architecture variant: dependencies
// point inward, from infrastructure through use cases to the domain.
package clean

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"userarch/internal/clean/infrastructure/httpapi"
	"userarch/internal/clean/infrastructure/repository"
	"userarch/internal/clean/usecase"
	"userarch/internal/platform/metrics"
	"userarch/internal/platform/middleware"
)

// Version identifies this variant on the /version endpoint.
const Version = httpapi.Version

// NewRouter wires the repository, the four use cases and the HTTP app
// behind the standard middleware chain.
func NewRouter(logger *slog.Logger, m *metrics.Metrics) chi.Router {
	repo := repository.NewInMemoryUserRepository()
	app := httpapi.New(
		usecase.NewCreateUser(repo, logger, m),
		usecase.NewGetUser(repo),
		usecase.NewListUsers(repo),
		usecase.NewDeleteUser(repo, logger, m),
		logger,
	)

	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	app.Register(r)
	if m != nil {
		r.Handle("/metrics", m.Handler())
	}
	return r
}
