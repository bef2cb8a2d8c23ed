// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"

	"github.com/preciouskorir/voting-system/models"
)

// Tally returns every candidate with its current vote count, in ballot
// order. It always reads the store; counts are never cached.
func (s *Service) Tally(ctx context.Context) ([]models.CandidateTally, error) {
	return s.tally(ctx, `
		SELECT id, name, category, county, votes FROM candidates ORDER BY id
	`)
}

// TallyByCategory is Tally restricted to one category.
func (s *Service) TallyByCategory(ctx context.Context, category string) ([]models.CandidateTally, error) {
	if !models.IsCategory(category) {
		return nil, ErrUnknownCategory
	}
	return s.tally(ctx, `
		SELECT id, name, category, county, votes FROM candidates WHERE category = $1 ORDER BY id
	`, category)
}

func (s *Service) tally(ctx context.Context, query string, args ...any) ([]models.CandidateTally, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, unavailable("read tally", err)
	}
	defer rows.Close()

	tallies := []models.CandidateTally{}
	for rows.Next() {
		var t models.CandidateTally
		if err := rows.Scan(&t.ID, &t.Name, &t.Category, &t.County, &t.Votes); err != nil {
			return nil, unavailable("scan tally", err)
		}
		tallies = append(tallies, t)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("read tally", err)
	}

	sortByBallotOrder(tallies, func(t models.CandidateTally) (string, int64) { return t.Category, t.ID })
	return tallies, nil
}

// GroupByCategory splits a tally into per-category results in ballot order.
// Categories with no candidates are omitted.
func GroupByCategory(tallies []models.CandidateTally) []models.CategoryResults {
	byCategory := make(map[string]*models.CategoryResults)
	for _, t := range tallies {
		group, ok := byCategory[t.Category]
		if !ok {
			group = &models.CategoryResults{
				Category:   t.Category,
				Nationwide: models.IsNationwide(t.Category),
				Candidates: []models.CandidateTally{},
			}
			byCategory[t.Category] = group
		}
		group.TotalVotes += t.Votes
		group.Candidates = append(group.Candidates, t)
	}

	results := []models.CategoryResults{}
	for _, category := range models.Categories {
		if group, ok := byCategory[category]; ok {
			results = append(results, *group)
		}
	}
	return results
}
