// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/ballot-kiosk/election"
)

// ArchivedSnapshot is one row of the results archive
type ArchivedSnapshot struct {
	ID           string
	ElectionName string
	FilePath     string
	ExportedAt   time.Time
	Snapshot     election.Snapshot
}

// Archive appends exported snapshots to the result_snapshot table
type Archive struct {
	db     *sql.DB
	dbType string
}

func NewArchive(db *sql.DB, dbType string) *Archive {
	return &Archive{db: db, dbType: dbType}
}

// Save stores a snapshot and returns its archive ID
func (a *Archive) Save(ctx context.Context, filePath string, exportedAt time.Time, snap election.Snapshot) (string, error) {
	payload, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	id := uuid.NewString()
	_, err = a.db.ExecContext(ctx, a.rebind(`
		INSERT INTO result_snapshot (id, election_name, file_path, exported_at, payload)
		VALUES (?, ?, ?, ?, ?)
	`), id, snap.ElectionName, filePath, exportedAt.UTC(), string(payload))
	if err != nil {
		return "", fmt.Errorf("failed to insert snapshot: %w", err)
	}

	return id, nil
}

// List returns archived snapshots, newest first. An empty electionName
// lists every election.
func (a *Archive) List(ctx context.Context, electionName string) ([]ArchivedSnapshot, error) {
	query := `
		SELECT id, election_name, file_path, exported_at, payload
		FROM result_snapshot`
	var args []any
	if electionName != "" {
		query += ` WHERE election_name = ?`
		args = append(args, electionName)
	}
	query += ` ORDER BY exported_at DESC, id`

	rows, err := a.db.QueryContext(ctx, a.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := []ArchivedSnapshot{}
	for rows.Next() {
		var s ArchivedSnapshot
		var payload string
		if err := rows.Scan(&s.ID, &s.ElectionName, &s.FilePath, &s.ExportedAt, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		if err := json.Unmarshal([]byte(payload), &s.Snapshot); err != nil {
			return nil, fmt.Errorf("failed to decode snapshot %s: %w", s.ID, err)
		}
		snapshots = append(snapshots, s)
	}

	return snapshots, rows.Err()
}

// rebind converts ? placeholders to $n for PostgreSQL
func (a *Archive) rebind(query string) string {
	if a.dbType != TypePostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
