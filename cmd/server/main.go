// server runs the HTTP API; run via go run ./cmd/server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"apidb/internal/audit"
	auditrepo "apidb/internal/audit/repository"
	"apidb/internal/config"
	"apidb/internal/db"
	"apidb/internal/logging"
	postrepo "apidb/internal/post/repository"
	postservice "apidb/internal/post/service"
	productrepo "apidb/internal/product/repository"
	"apidb/internal/security"
	"apidb/internal/server"
	"apidb/internal/telemetry/otel"
	userrepo "apidb/internal/user/repository"
	userservice "apidb/internal/user/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx := context.Background()
	providers, err := otel.NewProviders(ctx, cfg.OTLPEndpoint, "apidb", cfg.OTelInsecure)
	if err != nil {
		log.Fatalf("telemetry: %v", err)
	}
	providers.SetGlobal()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown", "error", err)
		}
	}()

	conn, err := db.Open(cfg.DSN())
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	users := userrepo.NewMySQLRepository(conn)
	posts := postrepo.NewMySQLRepository(conn)
	products := productrepo.NewMySQLRepository(conn)
	audits := auditrepo.NewMySQLRepository(conn)

	hasher := security.NewHasher(cfg.BcryptCost)

	if !cfg.AdminEnabled() {
		logger.Warn("ADMIN_API_KEY not set; product creation is disabled")
	}

	handler := server.New(server.Deps{
		Log:          logger,
		Users:        userservice.New(users, hasher, logger),
		Posts:        postservice.New(posts, users, logger),
		Products:     products,
		Audit:        audit.NewLogger(audits, logger),
		HealthPinger: conn,
		AdminAPIKey:  cfg.AdminAPIKey,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
	logger.Info("HTTP server stopped")
}
