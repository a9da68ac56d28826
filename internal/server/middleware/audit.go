package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"apidb/internal/audit"
)

// requestMetadata is the JSON shape stored in AuditLog.Metadata.
type requestMetadata struct {
	Path       string `json:"path"`
	StatusCode int    `json:"status_code"`
	DurationMs int64  `json:"duration_ms"`
	RequestID  string `json:"request_id,omitempty"`
}

// Audit records an audit log entry after each mutating request (POST, PUT,
// DELETE). Best-effort: failures are logged by the audit logger and do not
// fail the request. If logger is nil, the middleware no-ops.
func Audit(logger *audit.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if logger == nil || !mutating(r.Method) {
				next.ServeHTTP(w, r)
				return
			}
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			resource := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					resource = p
				}
			}
			meta := requestMetadata{
				Path:       r.URL.Path,
				StatusCode: ww.Status(),
				DurationMs: time.Since(start).Milliseconds(),
				RequestID:  GetRequestID(r.Context()),
			}
			metaJSON, _ := json.Marshal(meta)
			logger.LogEvent(r.Context(), r.Method, resource, ClientIP(r), string(metaJSON))
		})
	}
}

func mutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
