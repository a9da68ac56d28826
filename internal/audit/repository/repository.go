package repository

import (
	"context"

	"apidb/internal/audit/domain"
)

// Repository defines persistence for audit logs.
type Repository interface {
	Create(ctx context.Context, a *domain.AuditLog) error
	// List returns audit logs newest first, paginated by limit and offset.
	List(ctx context.Context, limit, offset int32) ([]*domain.AuditLog, error)
}
