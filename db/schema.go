// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/preciouskorir/voting-system/models"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB, dialect Dialect) error {
	var schema string
	switch dialect {
	case Postgres:
		schema = postgresSchema
	case SQLite:
		schema = sqliteSchema
	default:
		return fmt.Errorf("unsupported database type %q", dialect)
	}

	_, err := db.ExecContext(ctx, strings.ReplaceAll(schema, "{{categories}}", categoryList()))
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// categoryList renders the category enumeration for the CHECK constraint.
func categoryList() string {
	quoted := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		quoted[i] = "'" + c + "'"
	}
	return strings.Join(quoted, ", ")
}

const postgresSchema = `
-- Voters
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    id_number VARCHAR(8) NOT NULL UNIQUE,
    full_name VARCHAR(100) NOT NULL,
    county VARCHAR(50) NOT NULL
);

-- Candidates
CREATE TABLE IF NOT EXISTS candidates (
    id SERIAL PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    category VARCHAR(50) NOT NULL CHECK (category IN ({{categories}})),
    county VARCHAR(50),
    votes INTEGER NOT NULL DEFAULT 0 CHECK (votes >= 0),
    CHECK ((category = 'President') = (county IS NULL))
);

CREATE INDEX IF NOT EXISTS idx_candidates_county ON candidates(county);
CREATE INDEX IF NOT EXISTS idx_candidates_category ON candidates(category);

-- Ballots
CREATE TABLE IF NOT EXISTS votes (
    id SERIAL PRIMARY KEY,
    voter_id INTEGER NOT NULL REFERENCES users(id),
    candidate_id INTEGER NOT NULL REFERENCES candidates(id),
    category VARCHAR(50) NOT NULL,
    cast_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    CONSTRAINT unique_vote_per_category UNIQUE (voter_id, category)
);

CREATE INDEX IF NOT EXISTS idx_votes_candidate_id ON votes(candidate_id);
`

const sqliteSchema = `
-- Voters
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    id_number TEXT NOT NULL UNIQUE,
    full_name TEXT NOT NULL,
    county TEXT NOT NULL
);

-- Candidates
CREATE TABLE IF NOT EXISTS candidates (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    category TEXT NOT NULL CHECK (category IN ({{categories}})),
    county TEXT,
    votes INTEGER NOT NULL DEFAULT 0 CHECK (votes >= 0),
    CHECK ((category = 'President') = (county IS NULL))
);

CREATE INDEX IF NOT EXISTS idx_candidates_county ON candidates(county);
CREATE INDEX IF NOT EXISTS idx_candidates_category ON candidates(category);

-- Ballots
CREATE TABLE IF NOT EXISTS votes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    voter_id INTEGER NOT NULL REFERENCES users(id),
    candidate_id INTEGER NOT NULL REFERENCES candidates(id),
    category TEXT NOT NULL,
    cast_at TIMESTAMP NOT NULL,
    CONSTRAINT unique_vote_per_category UNIQUE (voter_id, category)
);

CREATE INDEX IF NOT EXISTS idx_votes_candidate_id ON votes(candidate_id);
`
