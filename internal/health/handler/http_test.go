package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) PingContext(ctx context.Context) error { return f.err }

func check(t *testing.T, pinger Pinger) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	NewHandler(pinger).Register(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))
	return w
}

func TestHealth_OK(t *testing.T) {
	w := check(t, &fakePinger{})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %q, want ok status", w.Body.String())
	}
}

func TestHealth_DatabaseDown(t *testing.T) {
	w := check(t, &fakePinger{err: errors.New("connection refused")})

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"degraded"`) {
		t.Errorf("body = %q, want degraded status", w.Body.String())
	}
}

func TestHealth_NilPinger(t *testing.T) {
	if w := check(t, nil); w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 with nil pinger", w.Code)
	}
}
