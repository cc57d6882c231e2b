// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/danielhkuo/ballot-kiosk/election"
)

// ExportWriteError reports a failed file write. In-memory state is untouched.
type ExportWriteError struct {
	Path string
	Err  error
}

func (e *ExportWriteError) Error() string {
	return fmt.Sprintf("failed to write results to %s: %v", e.Path, e.Err)
}

func (e *ExportWriteError) Unwrap() error {
	return e.Err
}

// DefaultFileName is "<election name>_results.json"
func DefaultFileName(electionName string) string {
	return SanitizeFileName(electionName) + "_results.json"
}

// SanitizeFileName strips directories and path separators so a caller
// supplied name stays inside the export directory
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.NewReplacer("/", "_", "\\", "_").Replace(name)
	if name == "" || name == "." || name == ".." {
		return "election"
	}
	return name
}

// ResolvePath returns the file to write inside dir. An empty fileName falls
// back to DefaultFileName and a .json extension is added when missing.
func ResolvePath(dir, fileName, electionName string) string {
	if strings.TrimSpace(fileName) == "" {
		fileName = DefaultFileName(electionName)
	} else {
		fileName = SanitizeFileName(filepath.Base(fileName))
	}
	if !strings.EqualFold(filepath.Ext(fileName), ".json") {
		fileName += ".json"
	}
	return filepath.Join(dir, fileName)
}

// Marshal renders the snapshot with four-space indentation
func Marshal(snap election.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snap, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// WriteFile writes the snapshot document to path and returns the number of
// bytes written
func WriteFile(path string, snap election.Snapshot) (int, error) {
	data, err := Marshal(snap)
	if err != nil {
		return 0, &ExportWriteError{Path: path, Err: err}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, &ExportWriteError{Path: path, Err: err}
	}
	return len(data), nil
}
