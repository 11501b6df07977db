package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userarch/internal/clean/domain"
	"userarch/internal/clean/infrastructure/repository"
	"userarch/internal/clean/usecase"
	"userarch/pkg/apperrors"
)

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewInMemoryUserRepository()
	create := usecase.NewCreateUser(repo, nil, nil)

	user, err := create.Execute(ctx, usecase.CreateUserInput{Name: "John Doe", Email: "john@example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)

	got, err := usecase.NewGetUser(repo).Execute(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestCreateUserValidation(t *testing.T) {
	repo := &countingRepo{}
	create := usecase.NewCreateUser(repo, nil, nil)

	_, err := create.Execute(context.Background(), usecase.CreateUserInput{Name: "A", Email: "john@example.com"})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))
	assert.Equal(t, "Name must be at least 2 characters long", err.Error())
	assert.Zero(t, repo.creates)
}

func TestCreateUserRepositoryFailure(t *testing.T) {
	cause := errors.New("disk full")
	create := usecase.NewCreateUser(&countingRepo{createErr: cause}, nil, nil)

	_, err := create.Execute(context.Background(), usecase.CreateUserInput{Name: "John Doe", Email: "john@example.com"})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeStorage))
	assert.True(t, errors.Is(err, cause))
}

func TestGetUserAbsent(t *testing.T) {
	get := usecase.NewGetUser(repository.NewInMemoryUserRepository())

	_, err := get.Execute(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
	assert.Equal(t, "User not found", err.Error())
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewInMemoryUserRepository()
	create := usecase.NewCreateUser(repo, nil, nil)
	list := usecase.NewListUsers(repo)

	users, err := list.Execute(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	u1, err := create.Execute(ctx, usecase.CreateUserInput{Name: "John Doe", Email: "john@example.com"})
	require.NoError(t, err)
	u2, err := create.Execute(ctx, usecase.CreateUserInput{Name: "Jane Doe", Email: "jane@example.com"})
	require.NoError(t, err)

	users, err = list.Execute(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []*domain.User{u1, u2}, users)
}

func TestDeleteUserTwice(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewInMemoryUserRepository()
	create := usecase.NewCreateUser(repo, nil, nil)
	del := usecase.NewDeleteUser(repo, nil, nil)

	user, err := create.Execute(ctx, usecase.CreateUserInput{Name: "John Doe", Email: "john@example.com"})
	require.NoError(t, err)

	require.NoError(t, del.Execute(ctx, user.ID))

	err = del.Execute(ctx, user.ID)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
	assert.Equal(t, "User not found", err.Error())
}

type countingRepo struct {
	creates   int
	createErr error
}

func (r *countingRepo) Create(_ context.Context, _ *domain.User) error {
	r.creates++
	return r.createErr
}

func (r *countingRepo) FindByID(context.Context, string) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (r *countingRepo) FindAll(context.Context) ([]*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (r *countingRepo) Delete(context.Context, string) error {
	return errors.New("not implemented")
}
