// Package db opens the MySQL connection pool and embeds schema migrations.
package db

import (
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open opens a MySQL connection pool using the given DSN. Caller must call Close when done.
// The pool replaces the per-request connections of earlier iterations of this service.
func Open(dsn string) (*sql.DB, error) {
	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(5 * time.Minute)
	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}
