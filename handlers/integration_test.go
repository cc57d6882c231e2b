// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/ballot-kiosk/election"
	"github.com/danielhkuo/ballot-kiosk/imaging"
	"github.com/danielhkuo/ballot-kiosk/models"
	"github.com/danielhkuo/ballot-kiosk/testutil"
)

// TestFullElectionWorkflow tests the complete end-to-end workflow:
// 1. Create election
// 2. Register candidates
// 3. Start voting
// 4. Cast votes
// 5. Check results are sealed
// 6. End voting
// 7. Verify ranked results
// 8. Export
func TestFullElectionWorkflow(t *testing.T) {
	cfg := testutil.GetTestConfig(t)
	registry := election.NewRegistry()
	electionHandler := NewElectionHandler(registry, imaging.NewLoader(cfg.PhotoSize, cfg.SymbolSize), cfg)
	votingHandler := NewVotingHandler(registry, cfg)
	resultsHandler := NewResultsHandler(registry, testutil.SetupTestArchive(t), cfg)

	const name = "Class President"

	// Step 1: Create an election with 3 slots
	req := testutil.MakeRequest("POST", "/elections", models.CreateElectionRequest{Name: name, CandidateCount: 3}, nil)
	w := httptest.NewRecorder()
	electionHandler.CreateElection(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 1 - Create election failed: %d - %s", w.Code, w.Body.String())
	}

	// Step 2: Register Ann, Ben, Cat
	dir := t.TempDir()
	for i, candidate := range []string{"Ann", "Ben", "Cat"} {
		body := models.SetCandidateRequest{
			Name:       candidate,
			PhotoPath:  testutil.WriteTestImage(t, dir, fmt.Sprintf("p%d.png", i), 240),
			SymbolPath: testutil.WriteTestImage(t, dir, fmt.Sprintf("s%d.png", i), 20),
		}
		req := testutil.MakeRequest("PUT", "/elections/x/candidates/x", body, nil)
		req.SetPathValue("name", name)
		req.SetPathValue("index", fmt.Sprint(i))
		w := httptest.NewRecorder()
		electionHandler.SetCandidate(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("Step 2 - Set candidate %s failed: %d - %s", candidate, w.Code, w.Body.String())
		}
	}

	// Step 3: Start voting
	req = testutil.MakeRequest("POST", "/elections/x/start", nil, nil)
	req.SetPathValue("name", name)
	w = httptest.NewRecorder()
	electionHandler.StartVoting(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 3 - Start voting failed: %d - %s", w.Code, w.Body.String())
	}

	// Photos are normalised to the default size
	e, _ := registry.Get(name)
	c, _ := e.Candidate(0)
	if b := c.Photo().Bounds(); b.Dx() != imaging.DefaultPhotoSize || b.Dy() != imaging.DefaultPhotoSize {
		t.Errorf("Step 3 - Expected %dpx photo, got %v", imaging.DefaultPhotoSize, b)
	}

	// Step 4: Ann, Ann, Cat
	for _, candidate := range []string{"Ann", "Ann", "Cat"} {
		req := testutil.MakeRequest("POST", "/elections/x/votes", models.CastVoteRequest{Candidate: candidate}, nil)
		req.SetPathValue("name", name)
		w := httptest.NewRecorder()
		votingHandler.CastVote(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("Step 4 - Vote for %s failed: %d - %s", candidate, w.Code, w.Body.String())
		}
	}

	// Step 5: Results stay sealed while voting is open
	req = testutil.MakeRequest("GET", "/elections/x/results", nil, nil)
	req.SetPathValue("name", name)
	w = httptest.NewRecorder()
	resultsHandler.GetResults(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("Step 5 - Expected sealed results, got %d", w.Code)
	}

	// Step 6: End voting
	req = testutil.MakeRequest("POST", "/elections/x/end", nil, nil)
	req.SetPathValue("name", name)
	w = httptest.NewRecorder()
	votingHandler.EndVoting(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 6 - End voting failed: %d - %s", w.Code, w.Body.String())
	}

	// Step 7: Ann 2, Cat 1, Ben 0
	req = testutil.MakeRequest("GET", "/elections/x/results", nil, nil)
	req.SetPathValue("name", name)
	w = httptest.NewRecorder()
	resultsHandler.GetResults(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 7 - Get results failed: %d - %s", w.Code, w.Body.String())
	}

	var results models.ResultsResponse
	testutil.AssertJSON(t, w, &results)
	want := []struct {
		name  string
		votes int
	}{{"Ann", 2}, {"Cat", 1}, {"Ben", 0}}
	for i, exp := range want {
		got := results.Results[i]
		if got.Name != exp.name || got.Votes != exp.votes || got.Rank != i+1 {
			t.Errorf("Step 7 - Position %d: expected %s (%d), got %s (%d) rank %d",
				i, exp.name, exp.votes, got.Name, got.Votes, got.Rank)
		}
	}

	// Step 8: Export
	req = testutil.MakeRequest("POST", "/elections/x/export", nil, nil)
	req.SetPathValue("name", name)
	w = httptest.NewRecorder()
	resultsHandler.ExportResults(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 8 - Export failed: %d - %s", w.Code, w.Body.String())
	}

	path := filepath.Join(cfg.ExportDir, name+"_results.json")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Step 8 - Expected export file at %s: %v", path, err)
	}

	// Votes after the end are rejected and change nothing
	req = testutil.MakeRequest("POST", "/elections/x/votes", models.CastVoteRequest{Candidate: "Ben"}, nil)
	req.SetPathValue("name", name)
	w = httptest.NewRecorder()
	votingHandler.CastVote(w, req)
	if w.Code != http.StatusConflict {
		t.Errorf("Expected 409 for vote after end, got %d", w.Code)
	}
	if e.Tally()["Ben"] != 0 {
		t.Errorf("Tally changed after end: %v", e.Tally())
	}
}
