package repository

import (
	"context"
	"database/sql"

	"apidb/internal/audit/domain"
)

type MySQLRepository struct {
	db *sql.DB
}

// NewMySQLRepository returns an audit log repository that uses the given db for persistence.
func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

// Create persists the audit log. The audit log must have ID set.
func (r *MySQLRepository) Create(ctx context.Context, a *domain.AuditLog) error {
	meta := sql.NullString{String: a.Metadata, Valid: a.Metadata != ""}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO audit_logs (id, action, resource, ip, metadata, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.Action, a.Resource, a.IP, meta, a.CreatedAt)
	return err
}

// List returns audit logs newest first, paginated by limit and offset.
func (r *MySQLRepository) List(ctx context.Context, limit, offset int32) ([]*domain.AuditLog, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, action, resource, ip, metadata, created_at FROM audit_logs ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.AuditLog
	for rows.Next() {
		var a domain.AuditLog
		var meta sql.NullString
		if err := rows.Scan(&a.ID, &a.Action, &a.Resource, &a.IP, &meta, &a.CreatedAt); err != nil {
			return nil, err
		}
		if meta.Valid {
			a.Metadata = meta.String
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
