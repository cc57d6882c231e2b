// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the ballot-kiosk API.

# Handler Types

Each handler is a struct holding the election registry and config:

  - ElectionHandler: Election setup (create, candidates, start, discard) and candidate images
  - VotingHandler: Vote casting and ending the vote
  - ResultsHandler: Ranked results, export and the results archive

Handlers are created via constructor functions:

	electionHandler := handlers.NewElectionHandler(registry, loader, cfg)
	resultsHandler := handlers.NewResultsHandler(registry, archive, cfg)

The registry has no locks of its own; the router wraps every handler in
middleware.Serialized.

# Election Lifecycle

Elections progress through three states: setup → voting → completed

	POST /elections                           → CreateElection (empty slots)
	PUT  /elections/{name}/candidates/{index} → SetCandidate (setup only)
	POST /elections/{name}/start              → StartVoting (validates, loads images)
	POST /elections/{name}/votes              → CastVote (voting only)
	POST /elections/{name}/end                → EndVoting
	GET  /elections/{name}/results            → GetResults (completed only)
	POST /elections/{name}/export             → ExportResults

Setup, end and export routes require the X-Operator-Key header.

# Errors

Core errors are mapped to status codes in errors.go: unknown election 404,
duplicate name or wrong state 409, bad input 400, roster problems 422.
*/
package handlers
