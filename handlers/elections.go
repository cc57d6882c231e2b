// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/ballot-kiosk/cliparse"
	"github.com/danielhkuo/ballot-kiosk/election"
	"github.com/danielhkuo/ballot-kiosk/imaging"
	"github.com/danielhkuo/ballot-kiosk/metrics"
	"github.com/danielhkuo/ballot-kiosk/middleware"
	"github.com/danielhkuo/ballot-kiosk/models"
)

type ElectionHandler struct {
	registry *election.Registry
	loader   election.ImageLoader
	cfg      cliparse.Config
}

func NewElectionHandler(registry *election.Registry, loader election.ImageLoader, cfg cliparse.Config) *ElectionHandler {
	return &ElectionHandler{registry: registry, loader: loader, cfg: cfg}
}

// CreateElection handles POST /elections
func (h *ElectionHandler) CreateElection(w http.ResponseWriter, r *http.Request) {
	var req models.CreateElectionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	e, err := h.registry.CreateElection(req.Name, req.CandidateCount)
	if err != nil {
		writeError(w, err)
		return
	}

	metrics.ElectionsCreated.Inc()
	slog.Info("election created", "election", e.Name(), "election_id", e.ID(), "candidates", e.SlotCount())

	middleware.JSONResponse(w, http.StatusCreated, models.ElectionWithCandidates{
		Election:   toElection(e),
		Candidates: toCandidates(e),
	})
}

// ListElections handles GET /elections
// Elections are returned in creation order
func (h *ElectionHandler) ListElections(w http.ResponseWriter, r *http.Request) {
	elections := []models.Election{}
	for _, e := range h.registry.List() {
		elections = append(elections, toElection(e))
	}

	middleware.JSONResponse(w, http.StatusOK, elections)
}

// GetElection handles GET /elections/{name}
// The status tells the front-end which screen to show
func (h *ElectionHandler) GetElection(w http.ResponseWriter, r *http.Request) {
	e, err := h.registry.Get(r.PathValue("name"))
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ElectionWithCandidates{
		Election:   toElection(e),
		Candidates: toCandidates(e),
	})
}

// CloseElection handles DELETE /elections/{name}
func (h *ElectionHandler) CloseElection(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	e, err := h.registry.Get(name)
	if err != nil {
		writeError(w, err)
		return
	}
	status := e.Status()

	if err := h.registry.Close(name); err != nil {
		writeError(w, err)
		return
	}

	slog.Info("election discarded", "election", name, "status", status)
	w.WriteHeader(http.StatusNoContent)
}

// SetCandidate handles PUT /elections/{name}/candidates/{index}
func (h *ElectionHandler) SetCandidate(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "index must be a number")
		return
	}

	var req models.SetCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	e, err := h.registry.Get(r.PathValue("name"))
	if err != nil {
		writeError(w, err)
		return
	}

	if err := e.SetCandidate(index, req.Name, req.PhotoPath, req.SymbolPath); err != nil {
		writeError(w, err)
		return
	}

	slog.Debug("candidate registered", "election", e.Name(), "index", index)

	c, _ := e.Candidate(index)
	middleware.JSONResponse(w, http.StatusOK, models.Candidate{
		Index:      index,
		Name:       c.Name,
		PhotoPath:  c.PhotoPath,
		SymbolPath: c.SymbolPath,
	})
}

// StartVoting handles POST /elections/{name}/start
// Validates every slot, loads images and opens voting
func (h *ElectionHandler) StartVoting(w http.ResponseWriter, r *http.Request) {
	e, err := h.registry.Get(r.PathValue("name"))
	if err != nil {
		writeError(w, err)
		return
	}

	if err := e.ValidateAndStart(h.loader); err != nil {
		slog.Warn("voting not started", "election", e.Name(), "error", err)
		writeError(w, err)
		return
	}

	metrics.Transitions.WithLabelValues(string(election.StatusVoting)).Inc()
	slog.Info("voting started", "election", e.Name(), "candidates", e.SlotCount())

	middleware.JSONResponse(w, http.StatusOK, models.ElectionWithCandidates{
		Election:   toElection(e),
		Candidates: toCandidates(e),
	})
}

// GetCandidatePhoto handles GET /elections/{name}/candidates/{index}/photo
func (h *ElectionHandler) GetCandidatePhoto(w http.ResponseWriter, r *http.Request) {
	h.serveImage(w, r, imaging.KindPhoto)
}

// GetCandidateSymbol handles GET /elections/{name}/candidates/{index}/symbol
func (h *ElectionHandler) GetCandidateSymbol(w http.ResponseWriter, r *http.Request) {
	h.serveImage(w, r, imaging.KindSymbol)
}

func (h *ElectionHandler) serveImage(w http.ResponseWriter, r *http.Request, kind string) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "index must be a number")
		return
	}

	e, err := h.registry.Get(r.PathValue("name"))
	if err != nil {
		writeError(w, err)
		return
	}

	c, err := e.Candidate(index)
	if err != nil {
		writeError(w, err)
		return
	}

	img := c.Photo()
	if kind == imaging.KindSymbol {
		img = c.Symbol()
	}
	if img == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Image not loaded until voting starts")
		return
	}

	var buf bytes.Buffer
	if err := imaging.EncodePNG(&buf, img); err != nil {
		slog.Error("failed to encode candidate image", "election", e.Name(), "index", index, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render image")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
