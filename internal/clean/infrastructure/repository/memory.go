// Package repository provides the infrastructure-ring persistence for the
// clean variant.
package repository

import (
	"context"
	"sync"

	"userarch/internal/clean/domain"
	"userarch/internal/clean/usecase"
	"userarch/internal/storage"
)

// InMemoryUserRepository implements usecase.UserRepository with a
// mutex-guarded map.
type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

// NewInMemoryUserRepository creates an empty repository.
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: make(map[string]domain.User)}
}

var _ usecase.UserRepository = (*InMemoryUserRepository)(nil)

// Create upserts the user keyed by id.
func (r *InMemoryUserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

// FindByID returns the user or storage.ErrNotFound.
func (r *InMemoryUserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &user, nil
}

// FindAll returns a snapshot of the stored users.
func (r *InMemoryUserRepository) FindAll(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		user := u
		users = append(users, &user)
	}
	return users, nil
}

// Delete removes the entry, strictly: an absent id is storage.ErrNotFound.
func (r *InMemoryUserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return storage.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

// Clear empties the repository. Test harness use only.
func (r *InMemoryUserRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = make(map[string]domain.User)
}
