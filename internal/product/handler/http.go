// Package handler exposes product CRUD over HTTP.
package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"apidb/internal/httpjson"
	"apidb/internal/product/domain"
	"apidb/internal/product/repository"
)

// Handler serves the /products routes. Products have no business rules beyond
// field validation, so the handler talks to the repository directly.
type Handler struct {
	repo repository.Repository
}

// NewHandler returns a product HTTP handler backed by repo.
func NewHandler(repo repository.Repository) *Handler {
	return &Handler{repo: repo}
}

// Register mounts the product routes on r. admin guards the create route.
func (h *Handler) Register(r chi.Router, admin func(http.Handler) http.Handler) {
	r.Get("/products", h.list)
	r.With(admin).Post("/products", h.create)
	r.Get("/products/{id}", h.get)
	r.Put("/products/{id}", h.update)
	r.Delete("/products/{id}", h.delete)
}

type productRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity" validate:"gte=0"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.List(r.Context())
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, "failed to list products")
		return
	}
	if products == nil {
		products = []*domain.Product{}
	}
	httpjson.Write(w, http.StatusOK, map[string]any{"products": products})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, "failed to look up product")
		return
	}
	if p == nil {
		httpjson.Error(w, http.StatusNotFound, "product not found")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{"product": p})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	p, ok := decodeProduct(w, r)
	if !ok {
		return
	}
	if err := h.repo.Create(r.Context(), p); err != nil {
		httpjson.Error(w, http.StatusInternalServerError, "failed to create product")
		return
	}
	httpjson.Message(w, http.StatusCreated, "Product created")
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, ok := decodeProduct(w, r)
	if !ok {
		return
	}
	p.ID = id
	matched, err := h.repo.Update(r.Context(), p)
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, "failed to update product")
		return
	}
	if !matched {
		httpjson.Error(w, http.StatusNotFound, "product not found")
		return
	}
	httpjson.Message(w, http.StatusOK, "Product updated")
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	deleted, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, "failed to delete product")
		return
	}
	if !deleted {
		httpjson.Error(w, http.StatusNotFound, "product not found")
		return
	}
	httpjson.Message(w, http.StatusOK, "Product deleted")
}

func decodeProduct(w http.ResponseWriter, r *http.Request) (*domain.Product, bool) {
	var req productRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	p := &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
	}
	if err := p.Validate(); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return p, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpjson.Error(w, http.StatusBadRequest, "id must be a positive integer")
		return 0, false
	}
	return id, true
}
