package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stayhub/stayhub/internal/api/respond"
	"github.com/stayhub/stayhub/internal/services"
)

// UserHandler provides HTTP transport for user operations.
type UserHandler struct {
	svc *services.Facade
}

func NewUserHandler(svc *services.Facade) *UserHandler { return &UserHandler{svc: svc} }

// CreateUser POST /api/v1/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var in struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		IsAdmin   bool   `json:"is_admin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	u, err := h.svc.CreateUser(r.Context(), services.CreateUserRequest{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		IsAdmin:   in.IsAdmin,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, u)
}

// ListUsers GET /api/v1/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, users)
}

// GetUser GET /api/v1/users/{userId}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetUser(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if u == nil {
		respond.WriteNotFound(w, "user not found")
		return
	}
	respond.WriteJSON(w, http.StatusOK, u)
}

// UpdateUser PUT /api/v1/users/{userId}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	u, err := h.svc.UpdateUser(r.Context(), mux.Vars(r)["userId"], fields)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if u == nil {
		respond.WriteNotFound(w, "user not found")
		return
	}
	respond.WriteJSON(w, http.StatusOK, u)
}

// DeleteUser DELETE /api/v1/users/{userId}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.svc.DeleteUser(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if !deleted {
		respond.WriteNotFound(w, "user not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
