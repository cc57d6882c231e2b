// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db holds the optional results archive.

Live election state is never stored here. Each successful export is
appended as a read-only row so past results can be listed later.

# Connecting

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}
	archive := db.NewArchive(conn, cfg.DatabaseType)

Supported types are "sqlite" (modernc.org/sqlite, default) and "postgres"
(github.com/lib/pq). CreateSchema is safe to call multiple times - uses IF
NOT EXISTS for all tables and indexes.

# Tables

  - result_snapshot: one row per export (id, election_name, file_path,
    exported_at, payload JSON)

# Queries

Queries are written with ? placeholders and rewritten to $n for
PostgreSQL.
*/
package db
