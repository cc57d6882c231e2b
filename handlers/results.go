// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/ballot-kiosk/cliparse"
	"github.com/danielhkuo/ballot-kiosk/db"
	"github.com/danielhkuo/ballot-kiosk/election"
	"github.com/danielhkuo/ballot-kiosk/export"
	"github.com/danielhkuo/ballot-kiosk/metrics"
	"github.com/danielhkuo/ballot-kiosk/middleware"
	"github.com/danielhkuo/ballot-kiosk/models"
)

type ResultsHandler struct {
	registry *election.Registry
	archive  *db.Archive // nil when no database is configured
	cfg      cliparse.Config
	now      func() time.Time
}

func NewResultsHandler(registry *election.Registry, archive *db.Archive, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{registry: registry, archive: archive, cfg: cfg, now: time.Now}
}

// GetResults handles GET /elections/{name}/results
// Returns 403 while voting is open (results are sealed)
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	e, err := h.registry.Get(r.PathValue("name"))
	if err != nil {
		writeError(w, err)
		return
	}

	// Results are sealed until voting ends
	if e.Status() != election.StatusCompleted {
		middleware.ErrorResponse(w, http.StatusForbidden, "Results are hidden until voting ends")
		return
	}

	ranked, err := e.RankedResults()
	if err != nil {
		writeError(w, err)
		return
	}

	total := e.TotalVotes()
	results := make([]models.Result, 0, len(ranked))
	for _, res := range ranked {
		share := 0.0
		if total > 0 {
			share = float64(res.Votes) / float64(total)
		}
		results = append(results, models.Result{
			Rank:       res.Rank,
			Place:      humanize.Ordinal(res.Rank),
			Name:       res.Name,
			Votes:      res.Votes,
			VotesLabel: votesLabel(res.Votes),
			Share:      share,
			PhotoURL:   imageURL(e.Name(), res.Index, "photo"),
			SymbolURL:  imageURL(e.Name(), res.Index, "symbol"),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Election: toElection(e),
		Results:  results,
	})
}

// ExportResults handles POST /elections/{name}/export
// Writes the snapshot to the export directory and, when configured, the archive.
// The body is optional.
func (h *ResultsHandler) ExportResults(w http.ResponseWriter, r *http.Request) {
	var req models.ExportRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	e, err := h.registry.Get(r.PathValue("name"))
	if err != nil {
		writeError(w, err)
		return
	}

	exportedAt := h.now()
	snap, err := e.Export(exportedAt)
	if err != nil {
		writeError(w, err)
		return
	}

	path := export.ResolvePath(h.cfg.ExportDir, req.FileName, e.Name())
	n, err := export.WriteFile(path, snap)
	if err != nil {
		metrics.Exports.WithLabelValues("file", "error").Inc()
		slog.Error("failed to export results", "election", e.Name(), "path", path, "error", err)
		writeError(w, err)
		return
	}
	metrics.Exports.WithLabelValues("file", "ok").Inc()

	resp := models.ExportResponse{
		FilePath: path,
		Bytes:    n,
		Size:     humanize.Bytes(uint64(n)),
		Snapshot: snap,
	}

	// Archive failures never undo the file export
	if h.archive != nil {
		id, err := h.archive.Save(r.Context(), path, exportedAt, snap)
		if err != nil {
			metrics.Exports.WithLabelValues("archive", "error").Inc()
			slog.Warn("failed to archive results", "election", e.Name(), "error", err)
			resp.ArchiveError = "Results were written to file but could not be archived"
		} else {
			metrics.Exports.WithLabelValues("archive", "ok").Inc()
			resp.ArchiveID = id
		}
	}

	slog.Info("results exported", "election", e.Name(), "path", path, "size", resp.Size, "archive_id", resp.ArchiveID)

	middleware.JSONResponse(w, http.StatusCreated, resp)
}

// ListExports handles GET /exports?election=
func (h *ResultsHandler) ListExports(w http.ResponseWriter, r *http.Request) {
	if h.archive == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Results archive is not configured")
		return
	}

	archived, err := h.archive.List(r.Context(), r.URL.Query().Get("election"))
	if err != nil {
		slog.Error("failed to list archived results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	exports := make([]models.ArchivedExport, 0, len(archived))
	for _, a := range archived {
		exports = append(exports, models.ArchivedExport{
			ID:           a.ID,
			ElectionName: a.ElectionName,
			FilePath:     a.FilePath,
			ExportedAt:   a.ExportedAt,
			Snapshot:     a.Snapshot,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, exports)
}

func votesLabel(votes int) string {
	if votes == 1 {
		return "1 vote"
	}
	return humanize.Comma(int64(votes)) + " votes"
}
