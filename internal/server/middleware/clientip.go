// Package middleware provides the HTTP middleware chain: request IDs, request
// logging, audit, and the admin key gate.
package middleware

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP returns the client IP from proxy headers (X-Forwarded-For,
// X-Real-IP) or the connection remote address, or "unknown".
func ClientIP(r *http.Request) string {
	if s := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); s != "" {
		if i := strings.Index(s, ","); i > 0 {
			s = strings.TrimSpace(s[:i])
		}
		if s != "" {
			return s
		}
	}
	if s := strings.TrimSpace(r.Header.Get("X-Real-Ip")); s != "" {
		return s
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
