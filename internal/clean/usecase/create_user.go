package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"userarch/internal/clean/domain"
	"userarch/internal/platform/metrics"
	"userarch/pkg/apperrors"
)

// CreateUserInput carries the data needed to create a user.
type CreateUserInput struct {
	Name  string
	Email string
}

// CreateUser is the use case that registers a new user.
type CreateUser struct {
	repo    UserRepository
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewCreateUser constructs the use case.
func NewCreateUser(repo UserRepository, logger *slog.Logger, m *metrics.Metrics) *CreateUser {
	return &CreateUser{repo: repo, logger: logger, metrics: m}
}

// Execute generates an id, builds the entity and persists it. A validation
// failure propagates unchanged and never reaches the repository.
func (uc *CreateUser) Execute(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	user, err := domain.NewUser(uuid.NewString(), input.Name, input.Email)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, user); err != nil {
		if uc.logger != nil {
			uc.logger.ErrorContext(ctx, "failed to persist user", "user_id", user.ID, "error", err)
		}
		return nil, apperrors.Wrap(err, apperrors.CodeStorage, "failed to create user")
	}

	uc.metrics.IncrementUsersCreated()
	return user, nil
}
