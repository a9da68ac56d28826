package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"apidb/internal/audit"
	auditdomain "apidb/internal/audit/domain"
)

func TestClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		forwarded  string
		realIP     string
		remoteAddr string
		want       string
	}{
		{"x-forwarded-for single", "203.0.113.7", "", "10.0.0.1:1234", "203.0.113.7"},
		{"x-forwarded-for chain", "203.0.113.7, 10.0.0.2", "", "10.0.0.1:1234", "203.0.113.7"},
		{"x-real-ip", "", "203.0.113.9", "10.0.0.1:1234", "203.0.113.9"},
		{"remote addr", "", "", "10.0.0.1:1234", "10.0.0.1"},
		{"remote addr no port", "", "", "10.0.0.1", "10.0.0.1"},
		{"nothing", "", "", "", "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tc.remoteAddr
			if tc.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tc.forwarded)
			}
			if tc.realIP != "" {
				r.Header.Set("X-Real-Ip", tc.realIP)
			}
			if got := ClientIP(r); got != tc.want {
				t.Errorf("ClientIP = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if seen == "" {
		t.Fatal("request ID should be assigned")
	}
	if got := w.Header().Get("X-Request-Id"); got != seen {
		t.Errorf("X-Request-Id header = %q, want %q", got, seen)
	}
}

func TestRequestID_PreservesIncoming(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Request-Id", "upstream-id-1")
	h.ServeHTTP(httptest.NewRecorder(), r)

	if seen != "upstream-id-1" {
		t.Errorf("request ID = %q, want upstream id", seen)
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	if id := GetRequestID(context.Background()); id != "" {
		t.Errorf("GetRequestID = %q, want empty", id)
	}
}

// captureRepo implements the audit repository for tests.
type captureRepo struct {
	created []*auditdomain.AuditLog
}

func (c *captureRepo) Create(ctx context.Context, a *auditdomain.AuditLog) error {
	c.created = append(c.created, a)
	return nil
}

func (c *captureRepo) List(ctx context.Context, limit, offset int32) ([]*auditdomain.AuditLog, error) {
	return c.created, nil
}

func TestAudit_RecordsMutatingRequests(t *testing.T) {
	repo := &captureRepo{}
	h := Audit(audit.NewLogger(repo, nil))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	r := httptest.NewRequest("POST", "/users", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	h.ServeHTTP(httptest.NewRecorder(), r)

	if len(repo.created) != 1 {
		t.Fatalf("created %d audit entries, want 1", len(repo.created))
	}
	e := repo.created[0]
	if e.Action != "POST" {
		t.Errorf("Action = %q, want POST", e.Action)
	}
	if e.Resource != "/users" {
		t.Errorf("Resource = %q, want /users", e.Resource)
	}
	if e.IP != "10.0.0.1" {
		t.Errorf("IP = %q, want 10.0.0.1", e.IP)
	}
	if !strings.Contains(e.Metadata, `"status_code":201`) {
		t.Errorf("Metadata = %q, should record status", e.Metadata)
	}
}

func TestAudit_SkipsReads(t *testing.T) {
	repo := &captureRepo{}
	h := Audit(audit.NewLogger(repo, nil))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/users", nil))

	if len(repo.created) != 0 {
		t.Errorf("created %d audit entries for GET, want 0", len(repo.created))
	}
}

func TestRequireAdminKey(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	testCases := []struct {
		name   string
		key    string
		header string
		want   int
	}{
		{"correct key", "hunter2", "hunter2", http.StatusCreated},
		{"wrong key", "hunter2", "nope", http.StatusForbidden},
		{"missing header", "hunter2", "", http.StatusForbidden},
		{"no key configured always denies", "", "anything", http.StatusForbidden},
		{"no key configured empty header denies", "", "", http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := RequireAdminKey(tc.key, nil)(next)
			r := httptest.NewRequest("POST", "/products", nil)
			if tc.header != "" {
				r.Header.Set(AdminKeyHeader, tc.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)
			if w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}
