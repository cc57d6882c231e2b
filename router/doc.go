// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the ballot-kiosk API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(registry, archive, cfg)

archive may be nil, in which case GET /exports answers 404.

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Election setup (operator, requires X-Operator-Key):

	POST   /elections                            - Create election
	DELETE /elections/{name}                     - Discard election
	PUT    /elections/{name}/candidates/{index}  - Fill candidate slot
	POST   /elections/{name}/start               - Validate and open voting

Voting screen (public):

	GET  /elections                                - Welcome screen list
	GET  /elections/{name}                         - Status and roster
	GET  /elections/{name}/candidates/{index}/photo
	GET  /elections/{name}/candidates/{index}/symbol
	POST /elections/{name}/votes                   - Cast one vote

Closing and results:

	POST /elections/{name}/end     - End voting (operator)
	GET  /elections/{name}/results - Ranked results (completed only)
	POST /elections/{name}/export  - Write results file (operator)
	GET  /exports                  - Archived exports (operator)

# Serialisation

Every route that touches the registry shares one mutex, so handlers run one
at a time and the election core needs no locks of its own.
*/
package router
