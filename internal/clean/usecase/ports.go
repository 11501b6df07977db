// Package usecase contains the application ring of the clean variant: one
// use case per operation, each depending only on the repository port.
package usecase

import (
	"context"

	"userarch/internal/clean/domain"
)

// UserRepository is the outbound port the use cases depend on. Concrete
// implementations live in the infrastructure ring.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
}
