// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: Connection string (required for postgres)
  - RedisURL: Shared candidate cache (optional, in-process cache otherwise)
  - CandidateCacheTTL: How stale a candidate listing may be (default: 5m, 0 disables)
  - StaticDir: Front-end directory (default: public)
  - Seed: Load the voter roll and candidate list into empty tables (default: true)
  - IPHashSalt: Salt for hashing client IPs before logging (random per process when unset)
  - LogLevel: debug, info, warn or error (default: info)

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-redis      Redis URL
	-cache-ttl  Candidate cache TTL
	-static     Static directory
	-seed       Seed empty tables
	-ip-salt    IP hash salt
	-log-level  Log level

# Environment Variables

Flags fall back to environment variables:

	PORT                → -p
	DATABASE_URL        → -d
	DATABASE_TYPE       → -t
	REDIS_URL           → -redis
	CANDIDATE_CACHE_TTL → -cache-ttl
	STATIC_DIR          → -static
	SEED                → -seed
	IP_HASH_SALT        → -ip-salt
	LOG_LEVEL           → -log-level

CLI flags take precedence over environment variables. main loads a .env
file into the environment before ParseFlags runs.
*/
package cliparse
