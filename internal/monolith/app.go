// Package monolith is the everything-in-one-place variant: entity, store
// and HTTP handlers live in a single package with no internal seams. The
// other variants peel these concerns apart; this one shows the baseline.
package monolith

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"userarch/internal/platform/metrics"
	"userarch/internal/platform/middleware"
	"userarch/pkg/apperrors"
	"userarch/pkg/httputil"
	"userarch/pkg/validate"
)

// Version identifies this variant on the /version endpoint.
const Version = "monolith"

// User is the user entity, valid by construction.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewUser validates id, name and email in contract order.
func NewUser(id, name, email string) (*User, error) {
	if err := validate.User(validate.NonEmptyID, id, name, email); err != nil {
		return nil, err
	}
	return &User{ID: id, Name: name, Email: email}, nil
}

// userStore is the in-process storage. An explicit instance rather than
// package-level state, so each App owns its data and tests can reset it.
type userStore struct {
	mu    sync.RWMutex
	users map[string]User
}

func newUserStore() *userStore {
	return &userStore{users: make(map[string]User)}
}

func (s *userStore) put(user *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = *user
}

func (s *userStore) get(id string) (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, false
	}
	return &user, true
}

func (s *userStore) all() []*User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]*User, 0, len(s.users))
	for _, u := range s.users {
		user := u
		users = append(users, &user)
	}
	return users
}

func (s *userStore) remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return false
	}
	delete(s.users, id)
	return true
}

func (s *userStore) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = make(map[string]User)
}

// App holds the whole variant: storage and handlers in one struct.
type App struct {
	store   *userStore
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewApp creates the monolith with its own empty store.
func NewApp(logger *slog.Logger, m *metrics.Metrics) *App {
	return &App{store: newUserStore(), logger: logger, metrics: m}
}

// Clear resets the store. Test harness use only.
func (a *App) Clear() {
	a.store.clear()
}

// Router builds the full HTTP surface behind the standard middleware chain.
func (a *App) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(a.logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(a.logger))

	r.Get("/health", a.handleHealth)
	r.Get("/version", a.handleVersion)
	r.Post("/users", a.handleCreateUser)
	r.Get("/users", a.handleListUsers)
	r.Get("/users/{id}", a.handleGetUser)
	r.Delete("/users/{id}", a.handleDeleteUser)
	if a.metrics != nil {
		r.Handle("/metrics", a.metrics.Handler())
	}
	return r
}

// NewRouter is the convenience used by the binary and the tests.
func NewRouter(logger *slog.Logger, m *metrics.Metrics) chi.Router {
	return NewApp(logger, m).Router()
}

func (a *App) handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (a *App) handleVersion(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"version": Version})
}

func (a *App) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, apperrors.New(apperrors.CodeValidation, "Invalid request body"))
		return
	}

	user, err := NewUser(uuid.NewString(), req.Name, req.Email)
	if err != nil {
		a.logger.WarnContext(r.Context(), "create user failed", "error", err.Error())
		httputil.WriteError(w, err)
		return
	}

	a.store.put(user)
	a.logger.InfoContext(r.Context(), "user created", "user_id", user.ID)
	a.metrics.IncrementUsersCreated()
	httputil.WriteJSON(w, http.StatusCreated, user)
}

func (a *App) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users := a.store.all()
	if users == nil {
		users = []*User{}
	}
	httputil.WriteJSON(w, http.StatusOK, users)
}

func (a *App) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, ok := a.store.get(chi.URLParam(r, "id"))
	if !ok {
		httputil.WriteError(w, apperrors.New(apperrors.CodeNotFound, "User not found"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, user)
}

func (a *App) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !a.store.remove(id) {
		httputil.WriteError(w, apperrors.New(apperrors.CodeNotFound, "User not found"))
		return
	}
	a.logger.InfoContext(r.Context(), "user deleted", "user_id", id)
	a.metrics.IncrementUsersDeleted()
	w.WriteHeader(http.StatusNoContent)
}
