package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userarch/internal/hexagonal/domain"
	"userarch/internal/storage"
)

func TestSaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryUserRepository()

	user, err := domain.NewUser("", "John Doe", "john@example.com")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, user))

	got, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestRemoveIsStrict(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryUserRepository()

	user, err := domain.NewUser("", "John Doe", "john@example.com")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, user))

	require.NoError(t, repo.Remove(ctx, user.ID))
	assert.ErrorIs(t, repo.Remove(ctx, user.ID), storage.ErrNotFound)
}

func TestFindAllSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryUserRepository()

	user, err := domain.NewUser("", "John Doe", "john@example.com")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, user))

	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	users[0].Name = "Hacked"

	got, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", got.Name)
}
