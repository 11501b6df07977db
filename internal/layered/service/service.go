// Package service orchestrates user operations for the layered variant.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"userarch/internal/layered/models"
	"userarch/internal/platform/metrics"
	"userarch/internal/storage"
	"userarch/pkg/apperrors"
)

// UserRepository is the persistence contract the service depends on.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindAll(ctx context.Context) ([]*models.User, error)
	Delete(ctx context.Context, id string) error
}

// Service applies the user business rules around repository calls.
type Service struct {
	repo    UserRepository
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service.
func New(repo UserRepository, opts ...Option) *Service {
	s := &Service{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateUser generates a fresh id, constructs the entity and persists it.
// Validation failures propagate unchanged and skip the repository entirely.
func (s *Service) CreateUser(ctx context.Context, name, email string) (*models.User, error) {
	user, err := models.NewUser(uuid.NewString(), name, email)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, user); err != nil {
		s.log(ctx, slog.LevelError, "failed to persist user", "user_id", user.ID, "error", err)
		return nil, apperrors.Wrap(err, apperrors.CodeStorage, "failed to create user")
	}

	s.log(ctx, slog.LevelInfo, "user created", "user_id", user.ID)
	s.metrics.IncrementUsersCreated()
	return user, nil
}

// GetUser returns the user or a not-found error. The not-found translation
// happens here, once, so adapters never interpret absence themselves.
func (s *Service) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "User not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeStorage, "failed to get user")
	}
	return user, nil
}

// ListUsers returns all users, unfiltered.
func (s *Service) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeStorage, "failed to list users")
	}
	return users, nil
}

// DeleteUser checks existence first so a second delete of the same id
// always yields the same not-found error, whatever the repository's own
// delete semantics.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.New(apperrors.CodeNotFound, "User not found")
		}
		return apperrors.Wrap(err, apperrors.CodeStorage, "failed to get user")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Lost a race with a concurrent delete; same outcome for the caller.
			return apperrors.New(apperrors.CodeNotFound, "User not found")
		}
		return apperrors.Wrap(err, apperrors.CodeStorage, "failed to delete user")
	}

	s.log(ctx, slog.LevelInfo, "user deleted", "user_id", id)
	s.metrics.IncrementUsersDeleted()
	return nil
}

func (s *Service) log(ctx context.Context, level slog.Level, msg string, args ...any) {
	if s.logger != nil {
		s.logger.Log(ctx, level, msg, args...)
	}
}
