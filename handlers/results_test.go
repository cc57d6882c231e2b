// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/ballot-kiosk/election"
	"github.com/danielhkuo/ballot-kiosk/models"
	"github.com/danielhkuo/ballot-kiosk/testutil"
)

func TestGetResults(t *testing.T) {
	registry := election.NewRegistry()
	handler := NewResultsHandler(registry, nil, testutil.GetTestConfig(t))

	testutil.CreateTestElection(t, registry, "Setup", "Alice", "Bob")
	testutil.StartTestElection(t, registry, "Running", "Alice", "Bob")
	testutil.CompleteTestElection(t, registry, "Done", map[string]int{"A": 2, "B": 2, "C": 5}, "A", "B", "C")

	tests := []struct {
		name           string
		electionName   string
		expectedStatus int
	}{
		{"sealed during setup", "Setup", http.StatusForbidden},
		{"sealed while voting", "Running", http.StatusForbidden},
		{"unknown election", "Nope", http.StatusNotFound},
		{"completed election", "Done", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/elections/x/results", nil, nil)
			req.SetPathValue("name", tt.electionName)
			w := httptest.NewRecorder()
			handler.GetResults(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp models.ResultsResponse
			testutil.AssertJSON(t, w, &resp)

			// Ties keep registration order
			want := []struct {
				name  string
				votes int
				place string
			}{
				{"C", 5, "1st"},
				{"A", 2, "2nd"},
				{"B", 2, "3rd"},
			}
			if len(resp.Results) != len(want) {
				t.Fatalf("Expected %d results, got %d", len(want), len(resp.Results))
			}
			for i, exp := range want {
				got := resp.Results[i]
				if got.Name != exp.name || got.Votes != exp.votes || got.Place != exp.place {
					t.Errorf("Position %d: expected %s/%d/%s, got %s/%d/%s",
						i, exp.name, exp.votes, exp.place, got.Name, got.Votes, got.Place)
				}
			}
			if resp.Results[0].VotesLabel != "5 votes" {
				t.Errorf("Unexpected votes label %q", resp.Results[0].VotesLabel)
			}
			if resp.Results[0].Share < 0.55 || resp.Results[0].Share > 0.56 {
				t.Errorf("Expected share 5/9, got %f", resp.Results[0].Share)
			}
			if resp.Election.BallotCount != 9 {
				t.Errorf("Expected 9 ballots, got %d", resp.Election.BallotCount)
			}
		})
	}
}

func TestGetResults_NoVotes(t *testing.T) {
	registry := election.NewRegistry()
	handler := NewResultsHandler(registry, nil, testutil.GetTestConfig(t))
	testutil.CompleteTestElection(t, registry, "Quiet", nil, "Alice", "Bob")

	req := testutil.MakeRequest("GET", "/elections/x/results", nil, nil)
	req.SetPathValue("name", "Quiet")
	w := httptest.NewRecorder()
	handler.GetResults(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Results) != 2 || resp.Results[0].Name != "Alice" || resp.Results[1].Name != "Bob" {
		t.Fatalf("Expected registration order on zero votes, got %+v", resp.Results)
	}
	for _, r := range resp.Results {
		if r.Votes != 0 || r.Share != 0 || r.VotesLabel != "0 votes" {
			t.Errorf("Unexpected zero-vote result %+v", r)
		}
	}
}

func TestExportResults(t *testing.T) {
	cfg := testutil.GetTestConfig(t)
	registry := election.NewRegistry()
	archive := testutil.SetupTestArchive(t)
	handler := NewResultsHandler(registry, archive, cfg)
	handler.now = func() time.Time { return time.Date(2024, 5, 1, 14, 30, 0, 0, time.Local) }

	testutil.StartTestElection(t, registry, "Running", "Alice", "Bob")
	testutil.CompleteTestElection(t, registry, "Class President", map[string]int{"Alice": 3, "Bob": 5}, "Alice", "Bob", "Carol")

	t.Run("sealed while voting", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/elections/x/export", nil, nil)
		req.SetPathValue("name", "Running")
		w := httptest.NewRecorder()
		handler.ExportResults(w, req)
		testutil.AssertStatus(t, w, http.StatusConflict)
	})

	t.Run("default file name", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/elections/x/export", nil, nil)
		req.SetPathValue("name", "Class President")
		w := httptest.NewRecorder()
		handler.ExportResults(w, req)

		testutil.AssertStatus(t, w, http.StatusCreated)

		var resp models.ExportResponse
		testutil.AssertJSON(t, w, &resp)

		wantPath := filepath.Join(cfg.ExportDir, "Class President_results.json")
		if resp.FilePath != wantPath {
			t.Errorf("Expected path %s, got %s", wantPath, resp.FilePath)
		}
		if resp.ArchiveID == "" || resp.ArchiveError != "" {
			t.Errorf("Expected archive row, got id=%q err=%q", resp.ArchiveID, resp.ArchiveError)
		}

		data, err := os.ReadFile(wantPath)
		if err != nil {
			t.Fatalf("Failed to read export file: %v", err)
		}
		if len(data) != resp.Bytes {
			t.Errorf("Expected %d bytes on disk, got %d", resp.Bytes, len(data))
		}

		var doc map[string]json.RawMessage
		if err := json.Unmarshal(data, &doc); err != nil {
			t.Fatalf("Export file is not JSON: %v", err)
		}
		for _, key := range []string{"election_name", "date", "candidates", "votes"} {
			if _, ok := doc[key]; !ok {
				t.Errorf("Export file missing %q", key)
			}
		}
		if len(doc) != 4 {
			t.Errorf("Expected exactly 4 fields, got %d", len(doc))
		}

		var snap election.Snapshot
		json.Unmarshal(data, &snap)
		if snap.Date != "2024-05-01 14:30:00" {
			t.Errorf("Unexpected date %q", snap.Date)
		}
		if snap.Votes["Alice"] != 3 || snap.Votes["Bob"] != 5 || snap.Votes["Carol"] != 0 {
			t.Errorf("Unexpected votes %v", snap.Votes)
		}
	})

	t.Run("caller file name is reduced to base name", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/elections/x/export", models.ExportRequest{FileName: "../../etc/final"}, nil)
		req.SetPathValue("name", "Class President")
		w := httptest.NewRecorder()
		handler.ExportResults(w, req)

		testutil.AssertStatus(t, w, http.StatusCreated)

		var resp models.ExportResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.FilePath != filepath.Join(cfg.ExportDir, "final.json") {
			t.Errorf("Unexpected path %s", resp.FilePath)
		}
	})

	t.Run("archive lists both exports", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/exports?election=Class%20President", nil, nil)
		w := httptest.NewRecorder()
		handler.ListExports(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp []models.ArchivedExport
		testutil.AssertJSON(t, w, &resp)
		if len(resp) != 2 {
			t.Fatalf("Expected 2 archived exports, got %d", len(resp))
		}
		if resp[0].Snapshot.ElectionName != "Class President" {
			t.Errorf("Unexpected election %q", resp[0].Snapshot.ElectionName)
		}
	})
}

func TestExportResults_WriteFailure(t *testing.T) {
	cfg := testutil.GetTestConfig(t)
	cfg.ExportDir = filepath.Join(t.TempDir(), "does", "not", "exist")
	registry := election.NewRegistry()
	handler := NewResultsHandler(registry, nil, cfg)
	e := testutil.CompleteTestElection(t, registry, "Class President", map[string]int{"Alice": 1}, "Alice", "Bob")

	req := testutil.MakeRequest("POST", "/elections/x/export", nil, nil)
	req.SetPathValue("name", "Class President")
	w := httptest.NewRecorder()
	handler.ExportResults(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	// In-memory state unaffected
	if e.Status() != election.StatusCompleted || e.Tally()["Alice"] != 1 {
		t.Errorf("Election changed after failed export: %s %v", e.Status(), e.Tally())
	}
}

func TestListExports_NoArchive(t *testing.T) {
	handler := NewResultsHandler(election.NewRegistry(), nil, testutil.GetTestConfig(t))

	req := testutil.MakeRequest("GET", "/exports", nil, nil)
	w := httptest.NewRecorder()
	handler.ListExports(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}
