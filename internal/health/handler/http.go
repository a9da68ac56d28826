// Package handler exposes the health check endpoint.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"apidb/internal/httpjson"
)

// Pinger reports whether the backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler serves the health check route.
type Handler struct {
	pinger Pinger
}

// NewHandler returns a health handler. A nil pinger skips the database probe
// and always reports ok.
func NewHandler(pinger Pinger) *Handler {
	return &Handler{pinger: pinger}
}

// Register mounts the health route on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/healthz", h.check)
}

func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		if err := h.pinger.PingContext(r.Context()); err != nil {
			httpjson.Write(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"status": "ok"})
}
