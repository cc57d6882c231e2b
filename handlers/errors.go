// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ballot-kiosk/election"
	"github.com/danielhkuo/ballot-kiosk/export"
	"github.com/danielhkuo/ballot-kiosk/middleware"
)

// writeError maps core errors to HTTP status codes
func writeError(w http.ResponseWriter, err error) {
	var (
		dupName    *election.DuplicateNameError
		badCount   *election.InvalidCandidateCountError
		badSlot    *election.SlotOutOfRangeError
		incomplete *election.IncompleteCandidateError
		dupCand    *election.DuplicateCandidateNameError
		loadErr    *election.ResourceLoadError
		unknown    *election.UnknownCandidateError
		badState   *election.InvalidStateError
		writeErr   *export.ExportWriteError
	)

	switch {
	case errors.Is(err, election.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Election not found")
	case errors.Is(err, election.ErrEmptyName):
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
	case errors.As(err, &dupName), errors.As(err, &badState):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.As(err, &badCount), errors.As(err, &badSlot), errors.As(err, &unknown):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &incomplete), errors.As(err, &dupCand), errors.As(err, &loadErr):
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &writeErr):
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
	default:
		slog.Error("unexpected error", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
