// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the voting service.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(svc, cfg, registry)

The registry passed in backs /metrics and should be the one the service's
metrics were registered on.

# Endpoints

Operational:

	GET /health  - Store reachability
	GET /metrics - Prometheus exposition

Voter flow:

	POST /login      - Resolve an ID number to a voter
	GET  /candidates - Ballot for ?voterId=
	POST /vote       - Cast one ballot

Results:

	GET /results - Tally grouped by category, optional ?category=

Front-end:

	GET /            - Redirects to /login.html
	GET /{file}      - Static files from cfg.StaticDir
*/
package router
