// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/ballot-kiosk/cliparse"
	"github.com/danielhkuo/ballot-kiosk/db"
	"github.com/danielhkuo/ballot-kiosk/election"
	"github.com/danielhkuo/ballot-kiosk/imaging"
)

// TestOperatorKey is the operator key used by GetTestConfig
const TestOperatorKey = "test-operator-key"

// OperatorHeaders returns the header map for operator routes
func OperatorHeaders() map[string]string {
	return map[string]string{"X-Operator-Key": TestOperatorKey}
}

// SetupTestDB opens an in-memory SQLite archive with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestArchive returns an archive backed by SetupTestDB
func SetupTestArchive(t *testing.T) *db.Archive {
	t.Helper()
	return db.NewArchive(SetupTestDB(t), db.TypeSQLite)
}

// GetTestConfig returns a standard test configuration exporting into a temp dir
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()
	return cliparse.Config{
		Port:         3318,
		Host:         "127.0.0.1",
		DatabaseType: db.TypeSQLite,
		ExportDir:    t.TempDir(),
		OperatorKey:  TestOperatorKey,
		LogFormat:    "text",
		LogLevel:     "error",
	}
}

// WriteTestImage writes a solid-colour PNG of the given size and returns its path
func WriteTestImage(t *testing.T, dir, name string, size int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return path
}

// CreateTestElection creates an election and fills every slot with the given
// names and generated images. It stays in setup.
func CreateTestElection(t *testing.T, registry *election.Registry, name string, candidates ...string) *election.Election {
	t.Helper()

	e, err := registry.CreateElection(name, len(candidates))
	if err != nil {
		t.Fatalf("Failed to create test election: %v", err)
	}

	dir := t.TempDir()
	for i, c := range candidates {
		photo := WriteTestImage(t, dir, fmt.Sprintf("photo%d.png", i), 32)
		symbol := WriteTestImage(t, dir, fmt.Sprintf("symbol%d.png", i), 16)
		if err := e.SetCandidate(i, c, photo, symbol); err != nil {
			t.Fatalf("Failed to set test candidate: %v", err)
		}
	}

	return e
}

// StartTestElection creates an election like CreateTestElection and opens voting
func StartTestElection(t *testing.T, registry *election.Registry, name string, candidates ...string) *election.Election {
	t.Helper()

	e := CreateTestElection(t, registry, name, candidates...)
	if err := e.ValidateAndStart(imaging.NewLoader(0, 0)); err != nil {
		t.Fatalf("Failed to start test election: %v", err)
	}
	return e
}

// CompleteTestElection opens voting, casts votes (candidate name -> count) and ends voting
func CompleteTestElection(t *testing.T, registry *election.Registry, name string, votes map[string]int, candidates ...string) *election.Election {
	t.Helper()

	e := StartTestElection(t, registry, name, candidates...)
	for candidate, n := range votes {
		for i := 0; i < n; i++ {
			if err := e.CastVote(candidate); err != nil {
				t.Fatalf("Failed to cast test vote: %v", err)
			}
		}
	}
	if err := e.EndVoting(); err != nil {
		t.Fatalf("Failed to end test election: %v", err)
	}
	return e
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
