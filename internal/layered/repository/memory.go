// Package repository provides the persistence implementations of the
// layered variant.
package repository

import (
	"context"
	"sync"

	"userarch/internal/layered/models"
	"userarch/internal/storage"
)

// InMemoryUserRepository keeps users in a process-local map. Safe for
// concurrent use; one mutex guards the map so a racing create and delete
// can interleave but never corrupt an entry.
type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewInMemoryUserRepository creates an empty repository.
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: make(map[string]models.User)}
}

// Create inserts the user, overwriting any existing entry with the same id.
func (r *InMemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

// FindByID returns the stored user or storage.ErrNotFound.
func (r *InMemoryUserRepository) FindByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &user, nil
}

// FindAll returns a snapshot of all stored users. Mutating the returned
// slice does not affect repository state.
func (r *InMemoryUserRepository) FindAll(_ context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		user := u
		users = append(users, &user)
	}
	return users, nil
}

// Delete removes the entry. Strict semantics: deleting an absent id
// returns storage.ErrNotFound.
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
	r.users = make(map[string]models.User)
}
