// Package ports declares the hexagon's boundaries. UserManagement is the
// driver (primary) port external actors call; UserRepository is the driven
// (secondary) port infrastructure must fulfil.
package ports

import (
	"context"

	"userarch/internal/hexagonal/domain"
)

// UserManagement defines how the application can be used from outside.
type UserManagement interface {
	CreateUser(ctx context.Context, name, email string) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// UserRepository is the persistence contract fulfilled by driven adapters.
type UserRepository interface {
	Save(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Remove(ctx context.Context, id string) error
}
