// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "time"

// DateLayout is the local timestamp format written to exports
const DateLayout = "2006-01-02 15:04:05"

type SnapshotCandidate struct {
	Name       string `json:"name"`
	PhotoPath  string `json:"photo_path"`
	SymbolPath string `json:"symbol_path"`
}

// Snapshot is the export document for a completed election.
// Candidates are in registration order; Votes keys match candidate names.
type Snapshot struct {
	ElectionName string              `json:"election_name"`
	Date         string              `json:"date"`
	Candidates   []SnapshotCandidate `json:"candidates"`
	Votes        map[string]int      `json:"votes"`
}

func newSnapshot(name string, now time.Time, candidates []Candidate, tally map[string]int) Snapshot {
	snap := Snapshot{
		ElectionName: name,
		Date:         now.Local().Format(DateLayout),
		Candidates:   make([]SnapshotCandidate, len(candidates)),
		Votes:        make(map[string]int, len(tally)),
	}
	for i, c := range candidates {
		snap.Candidates[i] = SnapshotCandidate{
			Name:       c.Name,
			PhotoPath:  c.PhotoPath,
			SymbolPath: c.SymbolPath,
		}
	}
	for name, votes := range tally {
		snap.Votes[name] = votes
	}
	return snap
}
