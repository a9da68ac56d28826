// Package audit records mutating API requests, best-effort.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"apidb/internal/audit/domain"
	auditrepo "apidb/internal/audit/repository"
)

// Logger writes audit entries through the audit repository.
// LogEvent is best-effort: failures are logged and do not affect the caller.
type Logger struct {
	repo auditrepo.Repository
	log  *slog.Logger
}

// NewLogger returns a Logger that persists to repo. repo may be nil; then
// LogEvent is a no-op.
func NewLogger(repo auditrepo.Repository, log *slog.Logger) *Logger {
	if log == nil {
		log = slog.Default()
	}
	return &Logger{repo: repo, log: log}
}

// LogEvent writes one audit log entry. Best-effort: errors are logged and not returned.
func (l *Logger) LogEvent(ctx context.Context, action, resource, ip, metadata string) {
	if l.repo == nil {
		return
	}
	entry := &domain.AuditLog{
		ID:        uuid.New().String(),
		Action:    action,
		Resource:  resource,
		IP:        ip,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	}
	if err := l.repo.Create(ctx, entry); err != nil {
		l.log.Error("audit: failed to log event",
			"action", action, "resource", resource, "error", err)
	}
}
