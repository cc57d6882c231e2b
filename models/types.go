package models

import (
	"time"

	"github.com/danielhkuo/ballot-kiosk/election"
)

// Request types

type CreateElectionRequest struct {
	Name           string `json:"name"`
	CandidateCount int    `json:"candidate_count"`
}

type SetCandidateRequest struct {
	Name       string `json:"name"`
	PhotoPath  string `json:"photo_path"`
	SymbolPath string `json:"symbol_path"`
}

type CastVoteRequest struct {
	Candidate string `json:"candidate"`
}

// Empty file_name uses "<election>_results.json"
type ExportRequest struct {
	FileName string `json:"file_name"`
}

// Response types

type Election struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Status         string     `json:"status"`
	CandidateCount int        `json:"candidate_count"`
	BallotCount    int        `json:"ballot_count"`
	CreatedAt      time.Time  `json:"created_at"`
	OpenedAt       *time.Time `json:"opened_at,omitempty"`
	ClosedAt       *time.Time `json:"closed_at,omitempty"`
}

type Candidate struct {
	Index      int    `json:"index"`
	Name       string `json:"name"`
	PhotoPath  string `json:"photo_path"`
	SymbolPath string `json:"symbol_path"`
	PhotoURL   string `json:"photo_url,omitempty"`
	SymbolURL  string `json:"symbol_url,omitempty"`
}

type ElectionWithCandidates struct {
	Election   Election    `json:"election"`
	Candidates []Candidate `json:"candidates"`
}

type CastVoteResponse struct {
	Candidate string `json:"candidate"`
	Message   string `json:"message"`
}

type Result struct {
	Rank       int     `json:"rank"`
	Place      string  `json:"place"` // "1st", "2nd", ...
	Name       string  `json:"name"`
	Votes      int     `json:"votes"`
	VotesLabel string  `json:"votes_label"`
	Share      float64 `json:"share"` // 0-1, zero when no votes were cast
	PhotoURL   string  `json:"photo_url"`
	SymbolURL  string  `json:"symbol_url"`
}

type ResultsResponse struct {
	Election Election `json:"election"`
	Results  []Result `json:"results"`
}

type ExportResponse struct {
	FilePath     string            `json:"file_path"`
	Bytes        int               `json:"bytes"`
	Size         string            `json:"size"`
	ArchiveID    string            `json:"archive_id,omitempty"`
	ArchiveError string            `json:"archive_error,omitempty"`
	Snapshot     election.Snapshot `json:"snapshot"`
}

type ArchivedExport struct {
	ID           string            `json:"id"`
	ElectionName string            `json:"election_name"`
	FilePath     string            `json:"file_path"`
	ExportedAt   time.Time         `json:"exported_at"`
	Snapshot     election.Snapshot `json:"snapshot"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
