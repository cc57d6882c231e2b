// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/ballot-kiosk/election"
	"github.com/danielhkuo/ballot-kiosk/export"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"not found", election.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", election.ErrNotFound), http.StatusNotFound},
		{"empty name", election.ErrEmptyName, http.StatusBadRequest},
		{"duplicate election", &election.DuplicateNameError{Name: "X"}, http.StatusConflict},
		{"invalid state", &election.InvalidStateError{Op: "cast vote", Status: election.StatusCompleted}, http.StatusConflict},
		{"bad count", &election.InvalidCandidateCountError{Count: 1}, http.StatusBadRequest},
		{"bad slot", &election.SlotOutOfRangeError{Index: 4, Slots: 2}, http.StatusBadRequest},
		{"unknown candidate", &election.UnknownCandidateError{Name: "X"}, http.StatusBadRequest},
		{"incomplete", &election.IncompleteCandidateError{Index: 0, Field: election.FieldPhoto}, http.StatusUnprocessableEntity},
		{"duplicate candidate", &election.DuplicateCandidateNameError{Name: "A", First: 0, Second: 1}, http.StatusUnprocessableEntity},
		{"resource load", &election.ResourceLoadError{CandidateIndex: 1, Resource: election.FieldSymbol, Err: errors.New("boom")}, http.StatusUnprocessableEntity},
		{"export write", &export.ExportWriteError{Path: "/x", Err: errors.New("read-only")}, http.StatusInternalServerError},
		{"anything else", errors.New("surprise"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			writeError(w, tt.err)
			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}
