package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"apidb/internal/httpjson"
)

// AdminKeyHeader carries the shared admin key for gated endpoints.
const AdminKeyHeader = "X-Admin-Key"

// RequireAdminKey denies the request unless it carries the configured admin
// key. With an empty configured key the gate always denies, so admin-only
// endpoints are disabled until a key is provisioned.
func RequireAdminKey(key string, log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(AdminKeyHeader)
			if key == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				log.Warn("unauthorized admin request",
					"method", r.Method, "path", r.URL.Path, "ip", ClientIP(r))
				httpjson.Error(w, http.StatusForbidden, "admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
