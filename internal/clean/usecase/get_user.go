package usecase

import (
	"context"
	"errors"

	"userarch/internal/clean/domain"
	"userarch/internal/storage"
	"userarch/pkg/apperrors"
)

// GetUser is the use case that retrieves a user by id.
type GetUser struct {
	repo UserRepository
}

// NewGetUser constructs the use case.
func NewGetUser(repo UserRepository) *GetUser {
	return &GetUser{repo: repo}
}

// Execute returns the user, or a not-found error when the id is absent.
func (uc *GetUser) Execute(ctx context.Context, id string) (*domain.User, error) {
	user, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "User not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeStorage, "failed to get user")
	}
	return user, nil
}
