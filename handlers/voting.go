// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/ballot-kiosk/auth"
	"github.com/danielhkuo/ballot-kiosk/cliparse"
	"github.com/danielhkuo/ballot-kiosk/election"
	"github.com/danielhkuo/ballot-kiosk/metrics"
	"github.com/danielhkuo/ballot-kiosk/middleware"
	"github.com/danielhkuo/ballot-kiosk/models"
)

type VotingHandler struct {
	registry *election.Registry
	cfg      cliparse.Config
}

func NewVotingHandler(registry *election.Registry, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{registry: registry, cfg: cfg}
}

// CastVote handles POST /elections/{name}/votes
// Every click counts; there is no voter identity check
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	candidate := strings.TrimSpace(req.Candidate)
	if candidate == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate is required")
		return
	}

	e, err := h.registry.Get(r.PathValue("name"))
	if err != nil {
		writeError(w, err)
		return
	}

	if err := e.CastVote(candidate); err != nil {
		metrics.VotesRejected.WithLabelValues(rejectReason(err)).Inc()
		writeError(w, err)
		return
	}

	metrics.VotesCast.WithLabelValues(e.Name()).Inc()
	slog.Info("vote cast",
		"election", e.Name(),
		"client", auth.HashClient(middleware.GetClientIP(r), h.cfg.OperatorKey),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		Candidate: candidate,
		Message:   "Your vote for " + candidate + " has been counted!",
	})
}

// EndVoting handles POST /elections/{name}/end
func (h *VotingHandler) EndVoting(w http.ResponseWriter, r *http.Request) {
	e, err := h.registry.Get(r.PathValue("name"))
	if err != nil {
		writeError(w, err)
		return
	}

	if err := e.EndVoting(); err != nil {
		writeError(w, err)
		return
	}

	metrics.Transitions.WithLabelValues(string(election.StatusCompleted)).Inc()
	slog.Info("voting ended", "election", e.Name(), "ballots", e.TotalVotes())

	middleware.JSONResponse(w, http.StatusOK, toElection(e))
}

func rejectReason(err error) string {
	var unknown *election.UnknownCandidateError
	var badState *election.InvalidStateError
	switch {
	case errors.As(err, &unknown):
		return "unknown_candidate"
	case errors.As(err, &badState):
		return "not_voting"
	default:
		return "other"
	}
}
