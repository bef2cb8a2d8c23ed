// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the county voting server.

Registered voters log in with their national ID number, see the ballot for
their county, and cast one vote per category. Results are tallied per
candidate and served to the dashboard.

# Starting the Server

With no configuration the server uses a local SQLite file and seeds the
voter roll:

	go run .

Against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 3000 -t postgres -d "postgres://..."

A .env file in the working directory is loaded first.

# Configuration

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (required for postgres)
  - REDIS_URL (--redis): Shared candidate cache (optional)
  - CANDIDATE_CACHE_TTL (--cache-ttl): Candidate cache TTL, 0 disables (default: 5m)
  - STATIC_DIR (--static): Front-end directory (default: public)
  - SEED (--seed): Seed empty tables at startup (default: true)
  - IP_HASH_SALT (--ip-salt): Secret for hashing client IPs in logs
  - LOG_LEVEL (--log-level): debug, info, warn or error (default: info)

# Architecture

  - voting: Identity, eligibility, ballot casting and tallies
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, request ids, logging, JSON helpers
  - models: Request/response and domain types
  - auth: ID number validation and log redaction
  - db: Drivers, schema creation and seeding
  - cache: Candidate list caches
  - metrics: Prometheus collectors
  - report: Terminal tally tables (cmd/tally)
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
