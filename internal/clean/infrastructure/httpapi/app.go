// Package httpapi is the interface-adapter ring of the clean variant: it
// maps HTTP requests onto use-case executions.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"userarch/internal/clean/domain"
	"userarch/internal/clean/usecase"
	"userarch/pkg/apperrors"
	"userarch/pkg/httputil"
)

// Version identifies this variant on the /version endpoint.
const Version = "clean-architecture"

// App bundles the four use cases behind the HTTP surface.
type App struct {
	createUser *usecase.CreateUser
	getUser    *usecase.GetUser
	listUsers  *usecase.ListUsers
	deleteUser *usecase.DeleteUser
	logger     *slog.Logger
}

// New creates the HTTP app from its use cases.
func New(create *usecase.CreateUser, get *usecase.GetUser, list *usecase.ListUsers, del *usecase.DeleteUser, logger *slog.Logger) *App {
	return &App{
		createUser: create,
		getUser:    get,
		listUsers:  list,
		deleteUser: del,
		logger:     logger,
	}
}

// Register mounts the routes on r.
func (a *App) Register(r chi.Router) {
	r.Get("/health", a.handleHealth)
	r.Get("/version", a.handleVersion)
	r.Post("/users", a.handleCreateUser)
	r.Get("/users", a.handleListUsers)
	r.Get("/users/{id}", a.handleGetUser)
	r.Delete("/users/{id}", a.handleDeleteUser)
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

	user, err := a.createUser.Execute(r.Context(), usecase.CreateUserInput{Name: req.Name, Email: req.Email})
	if err != nil {
		a.logger.WarnContext(r.Context(), "create user failed", "error", err.Error())
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, user)
}

func (a *App) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.listUsers.Execute(r.Context())
	if err != nil {
		a.logger.ErrorContext(r.Context(), "list users failed", "error", err.Error())
		httputil.WriteError(w, err)
		return
	}
	if users == nil {
		users = []*domain.User{}
	}
	httputil.WriteJSON(w, http.StatusOK, users)
}

func (a *App) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := a.getUser.Execute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, user)
}

func (a *App) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := a.deleteUser.Execute(r.Context(), chi.URLParam(r, "id")); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
