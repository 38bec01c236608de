package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Radek987976/hyperbare-manager/internal/model"
	authsvc "github.com/Radek987976/hyperbare-manager/internal/service/auth"
	"github.com/Radek987976/hyperbare-manager/internal/transport/http/httputil"
	"github.com/Radek987976/hyperbare-manager/internal/transport/http/middleware"
)

type AuthService interface {
	Register(ctx context.Context, params authsvc.RegisterParams) (*model.TokenPair, error)
	Login(ctx context.Context, email, password string) (*model.TokenPair, error)
	Users(ctx context.Context, role string) ([]*model.User, error)
	UpdateRole(ctx context.Context, id, role string) error
	Delete(ctx context.Context, id string) error
}

type handler struct {
	svc AuthService
}

func NewAuthHandler(service AuthService) *handler {
	return &handler{svc: service}
}

// Routes are the unauthenticated entry points.
func (h *handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/register", h.register)
	r.Post("/login", h.login)
	return r
}

// UserRoutes manage accounts; mounted behind RequireAuth. The assignee
// list is open to any authenticated user, the rest is admin-only.
func (h *handler) UserRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/technicians", h.listTechnicians)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/", h.listUsers)
		r.Put("/{id}/role", h.updateRole)
		r.Delete("/{id}", h.deleteUser)
	})
	return r
}

func (h *handler) Me(w http.ResponseWriter, r *http.Request) {
	u := middleware.UserFromContext(r.Context())
	if u == nil {
		httputil.Error(w, r, model.ErrInvalidCredentials)
		return
	}
	httputil.JSON(w, r, http.StatusOK, userToResponse(u))
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

func (h *handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, r, err)
		return
	}

	pair, err := h.svc.Register(r.Context(), authsvc.RegisterParams{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	})
	if err != nil {
		httputil.Error(w, r, err)
		return
	}

	httputil.JSON(w, r, http.StatusCreated, tokenToResponse(pair))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, r, err)
		return
	}

	pair, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		httputil.Error(w, r, err)
		return
	}

	httputil.JSON(w, r, http.StatusOK, tokenToResponse(pair))
}

func (h *handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.Users(r.Context(), r.URL.Query().Get("role"))
	if err != nil {
		httputil.Error(w, r, err)
		return
	}
	httputil.JSON(w, r, http.StatusOK, usersToResponse(users))
}

// listTechnicians feeds the assignee dropdown: every active account can
// be assigned work, admins included.
func (h *handler) listTechnicians(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.Users(r.Context(), "")
	if err != nil {
		httputil.Error(w, r, err)
		return
	}

	active := make([]*model.User, 0, len(users))
	for _, u := range users {
		if u.IsActive {
			active = append(active, u)
		}
	}
	httputil.JSON(w, r, http.StatusOK, usersToResponse(active))
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

func (h *handler) updateRole(w http.ResponseWriter, r *http.Request) {
	var req updateRoleRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, r, err)
		return
	}

	if err := h.svc.UpdateRole(r.Context(), chi.URLParam(r, "id"), req.Role); err != nil {
		httputil.Error(w, r, err)
		return
	}
	httputil.JSON(w, r, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	// An admin cannot delete their own account.
	if u := middleware.UserFromContext(r.Context()); u != nil && u.ID == chi.URLParam(r, "id") {
		httputil.Error(w, r, model.ErrForbidden)
		return
	}

	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httputil.Error(w, r, err)
		return
	}
	httputil.JSON(w, r, http.StatusNoContent, nil)
}

type userResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        userResponse `json:"user"`
}

func userToResponse(u *model.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func usersToResponse(users []*model.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userToResponse(u))
	}
	return out
}

func tokenToResponse(pair *model.TokenPair) tokenResponse {
	return tokenResponse{
		AccessToken: pair.AccessToken,
		TokenType:   pair.TokenType,
		User:        userToResponse(pair.User),
	}
}
