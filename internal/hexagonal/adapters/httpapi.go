package adapters

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"userarch/internal/hexagonal/domain"
	"userarch/internal/hexagonal/domain/ports"
	"userarch/pkg/apperrors"
	"userarch/pkg/httputil"
)

// Version identifies this variant on the /version endpoint.
const Version = "hexagonal-architecture"

// HTTPAPI is the driver adapter: it translates HTTP traffic into calls on
// the UserManagement port.
type HTTPAPI struct {
	users  ports.UserManagement
	logger *slog.Logger
}

// NewHTTPAPI creates the driver adapter.
func NewHTTPAPI(users ports.UserManagement, logger *slog.Logger) *HTTPAPI {
	return &HTTPAPI{users: users, logger: logger}
}

// Register mounts the routes on r.
func (a *HTTPAPI) Register(r chi.Router) {
	r.Get("/health", a.handleHealth)
	r.Get("/version", a.handleVersion)
	r.Post("/users", a.handleCreateUser)
	r.Get("/users", a.handleListUsers)
	r.Get("/users/{id}", a.handleGetUser)
	r.Delete("/users/{id}", a.handleDeleteUser)
}

func (a *HTTPAPI) handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (a *HTTPAPI) handleVersion(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"version": Version})
}

func (a *HTTPAPI) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, apperrors.New(apperrors.CodeValidation, "Invalid request body"))
		return
	}

	user, err := a.users.CreateUser(r.Context(), req.Name, req.Email)
	if err != nil {
		a.logger.WarnContext(r.Context(), "create user failed", "error", err.Error())
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, user)
}

func (a *HTTPAPI) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.users.ListUsers(r.Context())
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

func (a *HTTPAPI) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := a.users.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, user)
}

func (a *HTTPAPI) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := a.users.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
