// Package handler exposes user CRUD over HTTP.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"apidb/internal/httpjson"
	"apidb/internal/user/domain"
	"apidb/internal/user/service"
)

// Handler serves the /users routes.
type Handler struct {
	svc *service.Service
}

// NewHandler returns a user HTTP handler backed by svc.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the user routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/users", h.list)
	r.Post("/users", h.create)
	r.Get("/users/{id}", h.get)
	r.Put("/users/{id}", h.update)
	r.Delete("/users/{id}", h.delete)
}

type userRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	if users == nil {
		users = []*domain.User{}
	}
	httpjson.Write(w, http.StatusOK, map[string]any{"users": users})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	u, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "failed to look up user")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{"user": u})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := h.svc.Create(r.Context(), req.Name, req.Email, req.Password); err != nil {
		h.writeError(w, err, "failed to create user")
		return
	}
	httpjson.Message(w, http.StatusCreated, "User created")
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req userRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := h.svc.Update(r.Context(), id, req.Name, req.Email, req.Password); err != nil {
		h.writeError(w, err, "failed to update user")
		return
	}
	httpjson.Message(w, http.StatusOK, "User updated")
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.writeError(w, err, "failed to delete user")
		return
	}
	httpjson.Message(w, http.StatusOK, "User deleted")
}

func (h *Handler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, "user not found")
	case errors.Is(err, service.ErrEmailTaken):
		httpjson.Error(w, http.StatusConflict, "email already registered")
	case errors.Is(err, service.ErrBadEmail):
		httpjson.Error(w, http.StatusBadRequest, "invalid email address")
	default:
		httpjson.Error(w, http.StatusInternalServerError, fallback)
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpjson.Error(w, http.StatusBadRequest, "id must be a positive integer")
		return 0, false
	}
	return id, true
}
