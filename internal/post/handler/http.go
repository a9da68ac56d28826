// Package handler exposes post CRUD over HTTP.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"apidb/internal/httpjson"
	"apidb/internal/post/domain"
	"apidb/internal/post/service"
)

// Handler serves the /posts routes.
type Handler struct {
	svc *service.Service
}

// NewHandler returns a post HTTP handler backed by svc.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the post routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/posts", h.list)
	r.Post("/posts", h.create)
	r.Get("/posts/{id}", h.get)
	r.Put("/posts/{id}", h.update)
	r.Delete("/posts/{id}", h.delete)
	r.Get("/posts/user/{userID}", h.listByUser)
}

type postRequest struct {
	Title   string `json:"title" validate:"required,min=3,max=255"`
	Content string `json:"content" validate:"required,min=3"`
	UserID  int64  `json:"user_id" validate:"required,gt=0"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.List(r.Context())
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, "failed to list posts")
		return
	}
	if posts == nil {
		posts = []*domain.Post{}
	}
	httpjson.Write(w, http.StatusOK, map[string]any{"posts": posts})
}

func (h *Handler) listByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || userID <= 0 {
		httpjson.Error(w, http.StatusBadRequest, "user id must be a positive integer")
		return
	}
	posts, err := h.svc.ListByUser(r.Context(), userID)
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, "failed to list posts")
		return
	}
	if posts == nil {
		posts = []*domain.Post{}
	}
	httpjson.Write(w, http.StatusOK, map[string]any{"posts": posts})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "failed to look up post")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{"post": p})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := h.svc.Create(r.Context(), req.Title, req.Content, req.UserID); err != nil {
		h.writeError(w, err, "failed to create post")
		return
	}
	httpjson.Message(w, http.StatusCreated, "Post created")
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req postRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := h.svc.Update(r.Context(), id, req.Title, req.Content, req.UserID); err != nil {
		h.writeError(w, err, "failed to update post")
		return
	}
	httpjson.Message(w, http.StatusOK, "Post updated")
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.writeError(w, err, "failed to delete post")
		return
	}
	httpjson.Message(w, http.StatusOK, "Post deleted")
}

func (h *Handler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, "post not found")
	case errors.Is(err, service.ErrAuthorNotFound):
		httpjson.Error(w, http.StatusUnprocessableEntity, "post author not found")
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
