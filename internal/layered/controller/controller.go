// Package controller translates HTTP requests into service calls for the
// layered variant.
package controller

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"userarch/internal/layered/models"
	"userarch/pkg/apperrors"
	"userarch/pkg/httputil"
)

// Version identifies this variant on the /version endpoint.
const Version = "layered-architecture"

// UserService is the use-case contract the controller depends on.
type UserService interface {
	CreateUser(ctx context.Context, name, email string) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// Controller handles the user-management endpoints.
type Controller struct {
	svc    UserService
	logger *slog.Logger
}

// New creates a Controller.
func New(svc UserService, logger *slog.Logger) *Controller {
	return &Controller{svc: svc, logger: logger}
}

// Register mounts the routes on r.
func (c *Controller) Register(r chi.Router) {
	r.Get("/health", c.handleHealth)
	r.Get("/version", c.handleVersion)
	r.Post("/users", c.handleCreateUser)
	r.Get("/users", c.handleListUsers)
	r.Get("/users/{id}", c.handleGetUser)
	r.Delete("/users/{id}", c.handleDeleteUser)
}

func (c *Controller) handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (c *Controller) handleVersion(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"version": Version})
}

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (c *Controller) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, apperrors.New(apperrors.CodeValidation, "Invalid request body"))
		return
	}

	user, err := c.svc.CreateUser(r.Context(), req.Name, req.Email)
	if err != nil {
		c.logger.WarnContext(r.Context(), "create user failed", "error", err.Error())
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, user)
}

func (c *Controller) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.svc.ListUsers(r.Context())
	if err != nil {
		c.logger.ErrorContext(r.Context(), "list users failed", "error", err.Error())
		httputil.WriteError(w, err)
		return
	}
	if users == nil {
		users = []*models.User{}
	}
	httputil.WriteJSON(w, http.StatusOK, users)
}

func (c *Controller) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := c.svc.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, user)
}

func (c *Controller) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := c.svc.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
