// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ballot-kiosk server.

ballot-kiosk runs a single-machine plurality vote: an operator sets up an
election with 2 to 10 candidates (name, photo, symbol), participants click a
candidate to cast a vote, and once voting ends the ranked results can be
shown and exported to a JSON file.

All election state lives in memory for the life of the process. A browser
front-end on the same machine drives it through the local HTTP API.

# Starting the Server

	go run .

Or with flags:

	go run . -p 3318 -export-dir ./results -d results.db

# Configuration

Every setting can come from a flag, the environment, or a .env file
(flags win, then the environment, then .env):

  - PORT (-p): Server port (default: 3318)
  - HOST (-host): Listen address (default: 127.0.0.1)
  - EXPORT_DIR (-export-dir): Where result files are written (default: .)
  - OPERATOR_KEY (-operator-key): Key for setup routes (generated when empty)
  - DATABASE_URL (-d): Optional results archive
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - LOG_FORMAT (-log-format), LOG_LEVEL (-log-level)

# Architecture

  - election: Registry, election state machine, tally and ranking
  - imaging: Candidate photo and symbol normalisation
  - export: Results file writer
  - db: Optional results archive (SQLite or PostgreSQL)
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, serialisation, operator check, JSON helpers
  - models: Request/response types
  - auth: Operator key generation and validation
  - metrics: Prometheus counters
  - logging: slog handler selection
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
