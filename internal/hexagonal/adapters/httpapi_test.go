package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"userarch/internal/hexagonal/domain"
	"userarch/internal/hexagonal/domain/ports"
	"userarch/internal/storage"
	"userarch/pkg/apperrors"
)

func TestUserLifecycleOverHTTP(t *testing.T) {
	router := newAPIRouter(t)

	body, _ := json.Marshal(map[string]string{"name": "John Doe", "email": "john@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 creating user, got %d", rec.Code)
	}

	var created domain.User
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode create response: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected non-empty id")
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/"+created.ID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 fetching user, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/users/"+created.ID, nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 deleting user, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/"+created.ID, nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestVersionEndpoint(t *testing.T) {
	router := newAPIRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version", nil))
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode version response: %v", err)
	}
	if body["version"] != "hexagonal-architecture" {
		t.Fatalf("expected hexagonal-architecture, got %q", body["version"])
	}
}

// newAPIRouter wires the driver adapter against a minimal in-test service so
// the adapter test exercises only HTTP translation.
func newAPIRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	api := NewHTTPAPI(&fakeUserManagement{repo: NewInMemoryUserRepository()}, logger)
	r := chi.NewRouter()
	api.Register(r)
	return r
}

// fakeUserManagement applies the service's not-found translation without
// importing the application package (adapters must not depend on it).
type fakeUserManagement struct {
	repo ports.UserRepository
}

func (f *fakeUserManagement) CreateUser(ctx context.Context, name, email string) (*domain.User, error) {
	user, err := domain.NewUser("", name, email)
	if err != nil {
		return nil, err
	}
	if err := f.repo.Save(ctx, user); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeStorage, "failed to create user")
	}
	return user, nil
}

func (f *fakeUserManagement) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := f.repo.FindByID(ctx, id)
	if err == storage.ErrNotFound {
		return nil, apperrors.New(apperrors.CodeNotFound, "User not found")
	}
	return user, err
}

func (f *fakeUserManagement) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return f.repo.FindAll(ctx)
}

func (f *fakeUserManagement) DeleteUser(ctx context.Context, id string) error {
	if _, err := f.GetUser(ctx, id); err != nil {
		return err
	}
	return f.repo.Remove(ctx, id)
}
