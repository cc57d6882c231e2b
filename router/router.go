// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/ballot-kiosk/cliparse"
	"github.com/danielhkuo/ballot-kiosk/db"
	"github.com/danielhkuo/ballot-kiosk/election"
	"github.com/danielhkuo/ballot-kiosk/handlers"
	"github.com/danielhkuo/ballot-kiosk/imaging"
	"github.com/danielhkuo/ballot-kiosk/middleware"
)

// NewRouter wires every route. archive may be nil when no database is configured.
func NewRouter(registry *election.Registry, archive *db.Archive, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	loader := imaging.NewLoader(cfg.PhotoSize, cfg.SymbolSize)
	electionHandler := handlers.NewElectionHandler(registry, loader, cfg)
	votingHandler := handlers.NewVotingHandler(registry, cfg)
	resultsHandler := handlers.NewResultsHandler(registry, archive, cfg)

	// One event at a time, like the kiosk's single UI thread
	var mu sync.Mutex
	public := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.Serialized(&mu, h))
	}
	operator := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireOperator(cfg.OperatorKey, middleware.Serialized(&mu, h)))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	// Election setup (operator)
	mux.HandleFunc("POST /elections", operator(electionHandler.CreateElection))
	mux.HandleFunc("DELETE /elections/{name}", operator(electionHandler.CloseElection))
	mux.HandleFunc("PUT /elections/{name}/candidates/{index}", operator(electionHandler.SetCandidate))
	mux.HandleFunc("POST /elections/{name}/start", operator(electionHandler.StartVoting))

	// Welcome and voting screens
	mux.HandleFunc("GET /elections", public(electionHandler.ListElections))
	mux.HandleFunc("GET /elections/{name}", public(electionHandler.GetElection))
	mux.HandleFunc("GET /elections/{name}/candidates/{index}/photo", public(electionHandler.GetCandidatePhoto))
	mux.HandleFunc("GET /elections/{name}/candidates/{index}/symbol", public(electionHandler.GetCandidateSymbol))
	mux.HandleFunc("POST /elections/{name}/votes", public(votingHandler.CastVote))
	mux.HandleFunc("POST /elections/{name}/end", operator(votingHandler.EndVoting))

	// Results (sealed until voting ends)
	mux.HandleFunc("GET /elections/{name}/results", public(resultsHandler.GetResults))
	mux.HandleFunc("POST /elections/{name}/export", operator(resultsHandler.ExportResults))
	mux.HandleFunc("GET /exports", operator(resultsHandler.ListExports))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ballot-kiosk API v1"))
	})

	return mux
}
