// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/url"
	"strconv"
	"time"

	"github.com/danielhkuo/ballot-kiosk/election"
	"github.com/danielhkuo/ballot-kiosk/models"
)

func toElection(e *election.Election) models.Election {
	return models.Election{
		ID:             e.ID(),
		Name:           e.Name(),
		Status:         string(e.Status()),
		CandidateCount: e.SlotCount(),
		BallotCount:    e.TotalVotes(),
		CreatedAt:      e.CreatedAt(),
		OpenedAt:       timePtr(e.OpenedAt()),
		ClosedAt:       timePtr(e.ClosedAt()),
	}
}

// toCandidates lists the roster. Image URLs are only set once the images
// have been loaded.
func toCandidates(e *election.Election) []models.Candidate {
	loaded := e.Status() != election.StatusSetup
	candidates := make([]models.Candidate, 0, e.SlotCount())
	for i, c := range e.Candidates() {
		mc := models.Candidate{
			Index:      i,
			Name:       c.Name,
			PhotoPath:  c.PhotoPath,
			SymbolPath: c.SymbolPath,
		}
		if loaded {
			mc.PhotoURL = imageURL(e.Name(), i, "photo")
			mc.SymbolURL = imageURL(e.Name(), i, "symbol")
		}
		candidates = append(candidates, mc)
	}
	return candidates
}

func imageURL(electionName string, index int, kind string) string {
	return "/elections/" + url.PathEscape(electionName) + "/candidates/" + strconv.Itoa(index) + "/" + kind
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
