// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// SeedResult reports how many rows Seed inserted. Zero means the table
// already had data and was left alone.
type SeedResult struct {
	Voters     int
	Candidates int
}

// Seed loads the voter roll and the candidate list. Each table is only
// seeded while it is empty, so calling Seed on every start is safe.
func Seed(ctx context.Context, db *sql.DB) (SeedResult, error) {
	var res SeedResult

	empty, err := tableEmpty(ctx, db, "users")
	if err != nil {
		return res, err
	}
	if empty {
		err = inTx(ctx, db, func(tx *sql.Tx) error {
			for _, v := range seedVoters {
				_, err := tx.ExecContext(ctx, `
					INSERT INTO users (id_number, full_name, county)
					VALUES ($1, $2, $3)
				`, v.idNumber, v.fullName, v.county)
				if err != nil {
					return fmt.Errorf("failed to seed voter %s: %w", v.fullName, err)
				}
			}
			return nil
		})
		if err != nil {
			return res, err
		}
		res.Voters = len(seedVoters)
	}

	empty, err = tableEmpty(ctx, db, "candidates")
	if err != nil {
		return res, err
	}
	if empty {
		err = inTx(ctx, db, func(tx *sql.Tx) error {
			for _, c := range seedCandidates {
				var county *string
				if c.county != "" {
					county = &c.county
				}
				_, err := tx.ExecContext(ctx, `
					INSERT INTO candidates (name, category, county, votes)
					VALUES ($1, $2, $3, 0)
				`, c.name, c.category, county)
				if err != nil {
					return fmt.Errorf("failed to seed candidate %s: %w", c.name, err)
				}
			}
			return nil
		})
		if err != nil {
			return res, err
		}
		res.Candidates = len(seedCandidates)
	}

	return res, nil
}

func tableEmpty(ctx context.Context, db *sql.DB, table string) (bool, error) {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return count == 0, nil
}

func inTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
