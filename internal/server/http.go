// Package server assembles the HTTP API from the entity handlers.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"apidb/internal/audit"
	healthhandler "apidb/internal/health/handler"
	"apidb/internal/httpjson"
	posthandler "apidb/internal/post/handler"
	postservice "apidb/internal/post/service"
	producthandler "apidb/internal/product/handler"
	productrepo "apidb/internal/product/repository"
	"apidb/internal/server/middleware"
	userhandler "apidb/internal/user/handler"
	userservice "apidb/internal/user/service"
)

// Version is reported by the root endpoint.
const Version = "0.1.0"

// Deps holds the dependencies for the HTTP API.
type Deps struct {
	// Log receives request logs. If nil, slog.Default is used.
	Log *slog.Logger
	// Users backs the /users routes.
	Users *userservice.Service
	// Posts backs the /posts routes.
	Posts *postservice.Service
	// Products backs the /products routes.
	Products productrepo.Repository
	// Audit records mutating requests. If nil, requests are not audited.
	Audit *audit.Logger
	// HealthPinger is probed by /healthz (e.g. *sql.DB). If nil, the probe is skipped.
	HealthPinger healthhandler.Pinger
	// AdminAPIKey gates product creation. Empty disables the route.
	AdminAPIKey string
}

// New builds the API handler: middleware chain, entity routes, and the root
// info endpoint, wrapped with OpenTelemetry HTTP instrumentation.
func New(deps Deps) http.Handler {
	if deps.Log == nil {
		deps.Log = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(deps.Log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Audit(deps.Audit))

	r.Get("/", root)
	healthhandler.NewHandler(deps.HealthPinger).Register(r)
	userhandler.NewHandler(deps.Users).Register(r)
	posthandler.NewHandler(deps.Posts).Register(r)
	producthandler.NewHandler(deps.Products).Register(r,
		middleware.RequireAdminKey(deps.AdminAPIKey, deps.Log))

	return otelhttp.NewHandler(r, "apidb")
}

func root(w http.ResponseWriter, r *http.Request) {
	httpjson.Write(w, http.StatusOK, map[string]any{
		"message":     "Welcome to the API DB service",
		"description": "CRUD API backed by MySQL",
		"version":     Version,
		"status":      "healthy",
		"endpoints": map[string]string{
			"users":    "/users",
			"products": "/products",
			"posts":    "/posts",
			"health":   "/healthz",
		},
	})
}
