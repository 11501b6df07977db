package usecase

import (
	"context"
	"errors"
	"log/slog"

	"userarch/internal/platform/metrics"
	"userarch/internal/storage"
	"userarch/pkg/apperrors"
)

// DeleteUser is the use case that removes a user.
type DeleteUser struct {
	repo    UserRepository
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewDeleteUser constructs the use case.
func NewDeleteUser(repo UserRepository, logger *slog.Logger, m *metrics.Metrics) *DeleteUser {
	return &DeleteUser{repo: repo, logger: logger, metrics: m}
}

// Execute verifies the user exists before deleting, so repeating the call
// for the same id always yields the same not-found error.
func (uc *DeleteUser) Execute(ctx context.Context, id string) error {
	if _, err := uc.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.New(apperrors.CodeNotFound, "User not found")
		}
		return apperrors.Wrap(err, apperrors.CodeStorage, "failed to get user")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.New(apperrors.CodeNotFound, "User not found")
		}
		return apperrors.Wrap(err, apperrors.CodeStorage, "failed to delete user")
	}

	if uc.logger != nil {
		uc.logger.InfoContext(ctx, "user deleted", "user_id", id)
	}
	uc.metrics.IncrementUsersDeleted()
	return nil
}
