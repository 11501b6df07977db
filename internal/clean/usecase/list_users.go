package usecase

import (
	"context"

	"userarch/internal/clean/domain"
	"userarch/pkg/apperrors"
)

// ListUsers is the use case that returns every stored user.
type ListUsers struct {
	repo UserRepository
}

// NewListUsers constructs the use case.
func NewListUsers(repo UserRepository) *ListUsers {
	return &ListUsers{repo: repo}
}

// Execute returns the repository snapshot unchanged.
func (uc *ListUsers) Execute(ctx context.Context) ([]*domain.User, error) {
	users, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeStorage, "failed to list users")
	}
	return users, nil
}
