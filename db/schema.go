// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Open connects to the results archive and verifies the connection
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case TypeSQLite, TypePostgres:
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(dbType, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows a single writer
	if dbType == TypeSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Exported result snapshots
CREATE TABLE IF NOT EXISTS result_snapshot (
    id TEXT PRIMARY KEY,
    election_name TEXT NOT NULL,
    file_path TEXT NOT NULL,
    exported_at TIMESTAMP NOT NULL,
    payload TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_result_snapshot_election ON result_snapshot(election_name);
`
