// Package application implements the driver port by coordinating the
// domain with the driven ports.
package application

import (
	"context"
	"errors"
	"log/slog"

	"userarch/internal/hexagonal/domain"
	"userarch/internal/hexagonal/domain/ports"
	"userarch/internal/platform/metrics"
	"userarch/internal/storage"
	"userarch/pkg/apperrors"
)

// Service implements ports.UserManagement.
type Service struct {
	repo    ports.UserRepository
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

// New constructs the application service around a repository port.
func New(repo ports.UserRepository, opts ...Option) *Service {
	s := &Service{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.UserManagement = (*Service)(nil)

// CreateUser constructs a user with a generated id and saves it. When
// construction fails the repository is never touched.
func (s *Service) CreateUser(ctx context.Context, name, email string) (*domain.User, error) {
	user, err := domain.NewUser("", name, email)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, user); err != nil {
		s.log(ctx, slog.LevelError, "failed to save user", "user_id", user.ID, "error", err)
		return nil, apperrors.Wrap(err, apperrors.CodeStorage, "failed to create user")
	}

	s.log(ctx, slog.LevelInfo, "user created", "user_id", user.ID)
	s.metrics.IncrementUsersCreated()
	return user, nil
}

// GetUser translates repository absence into a not-found error exactly once,
// here at the service boundary.
func (s *Service) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "User not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeStorage, "failed to get user")
	}
	return user, nil
}

// ListUsers returns every stored user.
func (s *Service) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeStorage, "failed to list users")
	}
	return users, nil
}

// DeleteUser pre-checks existence so double deletes deterministically yield
// the same not-found error.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.New(apperrors.CodeNotFound, "User not found")
		}
		return apperrors.Wrap(err, apperrors.CodeStorage, "failed to get user")
	}

	if err := s.repo.Remove(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
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
