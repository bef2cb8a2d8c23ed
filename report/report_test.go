// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/preciouskorir/voting-system/models"
)

func strPtr(s string) *string { return &s }

func TestWriteTally(t *testing.T) {
	results := []models.CategoryResults{
		{
			Category:   models.CategoryPresident,
			Nationwide: true,
			TotalVotes: 4000,
			Candidates: []models.CandidateTally{
				{Candidate: models.Candidate{ID: 1, Name: "Paul Kipchumba", Category: models.CategoryPresident}, Votes: 1000},
				{Candidate: models.Candidate{ID: 2, Name: "Amina Wanjiku", Category: models.CategoryPresident}, Votes: 3000},
			},
		},
		{
			Category:   models.CategoryGovernor,
			TotalVotes: 0,
			Candidates: []models.CandidateTally{
				{Candidate: models.Candidate{ID: 3, Name: "Precious Korir", Category: models.CategoryGovernor, County: strPtr("Baringo")}},
			},
		},
	}

	var buf bytes.Buffer
	WriteTally(&buf, results)
	out := buf.String()

	assert.Contains(t, out, "## President (nationwide, 4,000 votes)")
	assert.Contains(t, out, "## Governors (county, 0 votes)")
	assert.Contains(t, out, "Paul Kipchumba")
	assert.Contains(t, out, "3,000")
	assert.Contains(t, out, "75.0%")
	assert.Contains(t, out, "Baringo")
	assert.Less(t, strings.Index(out, "President"), strings.Index(out, "Governors"))
}

func TestWriteTallyEmpty(t *testing.T) {
	var buf bytes.Buffer
	WriteTally(&buf, nil)
	assert.Equal(t, "No candidates found.\n", buf.String())
}
