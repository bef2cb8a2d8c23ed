// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the store and provisions it before the server takes traffic.

# Backends

Two dialects are supported:

  - Postgres: github.com/lib/pq
  - SQLite: modernc.org/sqlite (default; single connection, foreign keys on)

	dialect, _ := db.ParseDialect(cfg.DatabaseType)
	conn, err := db.Open(dialect, cfg.DatabaseURL)

Queries use $N placeholders, which both drivers accept.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn, dialect); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - users: the voter roll, unique 8-digit id_number
  - candidates: category, nullable county, running vote count
  - votes: one row per ballot, UNIQUE (voter_id, category)

# Relationships

	users 1──* votes
	candidates 1──* votes

# Seeding

Seed loads the voter roll and candidate list into empty tables only:

	res, err := db.Seed(ctx, conn)

# Constraint Errors

IsUniqueViolation recognises duplicate-key errors from either driver. The
voting ledger uses it to turn the votes uniqueness constraint into an
already-voted rejection.
*/
package db
