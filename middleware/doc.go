// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Serialisation

The election core is single-threaded. Routes that touch it share one
mutex so requests run to completion one at a time:

	var mu sync.Mutex
	mux.HandleFunc("POST /elections/{name}/votes",
		middleware.WithLogging(middleware.Serialized(&mu, votingHandler.CastVote)))

# Operator Routes

Setup, close and export routes require X-Operator-Key:

	middleware.RequireOperator(cfg.OperatorKey, electionHandler.CreateElection)

# CORS Middleware

Enable cross-origin requests for the kiosk front-end:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type, Authorization, X-Operator-Key.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.CreateElectionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used for hashed client identifiers in vote logs.
*/
package middleware
