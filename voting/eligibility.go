// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/preciouskorir/voting-system/models"
)

// candidateLoadTimeout bounds a shared candidate read, which no longer
// follows any single request's deadline.
const candidateLoadTimeout = 10 * time.Second

// IsEligible reports whether voter may vote for candidate: nationwide
// candidates are open to everyone, every other category requires the
// candidate's county to match the voter's.
func IsEligible(voter models.VoterRecord, candidate models.Candidate) bool {
	if models.IsNationwide(candidate.Category) {
		return true
	}
	return candidate.County != nil && *candidate.County == voter.County
}

// EligibleCandidates returns every candidate voterID may vote for, ordered by
// ballot position of the category and then by candidate id.
func (s *Service) EligibleCandidates(ctx context.Context, voterID int64) ([]models.Candidate, error) {
	voter, err := s.Voter(ctx, voterID)
	if err != nil {
		return nil, err
	}
	return s.candidatesForCounty(ctx, voter.County)
}

func (s *Service) candidatesForCounty(ctx context.Context, county string) ([]models.Candidate, error) {
	if s.cache == nil {
		return s.loadCandidates(ctx, county)
	}

	cached, ok, err := s.cache.Get(ctx, county)
	switch {
	case err != nil:
		// A broken cache degrades to reading the store.
		slog.Warn("candidate cache read failed", "county", county, "error", err)
		s.metrics.RecordCacheLookup("error")
	case ok:
		s.metrics.RecordCacheLookup("hit")
		return cached, nil
	default:
		s.metrics.RecordCacheLookup("miss")
	}

	// Concurrent misses for one county share a single store read. The read
	// is detached from the caller that started it, so one request giving up
	// does not fail the others waiting on the same county.
	ch := s.group.DoChan(county, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), candidateLoadTimeout)
		defer cancel()

		candidates, err := s.loadCandidates(loadCtx, county)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(loadCtx, county, candidates); err != nil {
			slog.Warn("candidate cache write failed", "county", county, "error", err)
		}
		return candidates, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return slices.Clone(res.Val.([]models.Candidate)), nil
	}
}

func (s *Service) loadCandidates(ctx context.Context, county string) ([]models.Candidate, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, category, county
		FROM candidates
		WHERE (category = $1 AND county IS NULL)
		   OR (category <> $1 AND county = $2)
		ORDER BY id
	`, models.CategoryPresident, county)
	if err != nil {
		return nil, unavailable("list candidates", err)
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Category, &c.County); err != nil {
			return nil, unavailable("scan candidate", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("list candidates", err)
	}

	sortByBallotOrder(candidates, func(c models.Candidate) (string, int64) { return c.Category, c.ID })
	return candidates, nil
}

// sortByBallotOrder orders by category rank, then id. key extracts both.
func sortByBallotOrder[T any](items []T, key func(T) (string, int64)) {
	slices.SortStableFunc(items, func(a, b T) int {
		ca, ia := key(a)
		cb, ib := key(b)
		if ra, rb := models.CategoryRank(ca), models.CategoryRank(cb); ra != rb {
			return ra - rb
		}
		switch {
		case ia < ib:
			return -1
		case ia > ib:
			return 1
		}
		return 0
	})
}
