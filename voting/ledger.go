// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/preciouskorir/voting-system/db"
	"github.com/preciouskorir/voting-system/metrics"
	"github.com/preciouskorir/voting-system/models"
)

// CastVote records one ballot for voterID and adds one to candidateID's
// tally, as a single transaction.
//
// Rejections, checked in order: ErrUnknownCandidate, ErrUnknownVoter,
// ErrIneligible, *AlreadyVotedError. The UNIQUE (voter_id, category)
// constraint on votes is what actually guarantees one ballot per category;
// the existence check before the insert only saves a failed write. When the
// transaction does not commit, neither the ballot nor the increment exists.
func (s *Service) CastVote(ctx context.Context, voterID, candidateID int64) (models.Ballot, error) {
	start := time.Now()
	ballot, err := s.castVote(ctx, voterID, candidateID)
	s.metrics.ObserveCastLatency(time.Since(start))
	s.metrics.IncrementVote(outcome(err), ballot.Category)
	return ballot, err
}

func (s *Service) castVote(ctx context.Context, voterID, candidateID int64) (models.Ballot, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Ballot{}, unavailable("begin vote", err)
	}
	defer tx.Rollback()

	var candidate models.Candidate
	err = tx.QueryRowContext(ctx, `
		SELECT id, name, category, county FROM candidates WHERE id = $1
	`, candidateID).Scan(&candidate.ID, &candidate.Name, &candidate.Category, &candidate.County)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Ballot{}, ErrUnknownCandidate
	}
	if err != nil {
		return models.Ballot{}, unavailable("load candidate", err)
	}

	ballot := models.Ballot{
		VoterID:     voterID,
		CandidateID: candidateID,
		Category:    candidate.Category,
	}

	voter, err := lookupVoter(ctx, tx, voterID)
	if err != nil {
		return ballot, err
	}

	if !IsEligible(voter, candidate) {
		return ballot, ErrIneligible
	}

	var exists bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM votes WHERE voter_id = $1 AND category = $2
		)
	`, voterID, candidate.Category).Scan(&exists)
	if err != nil {
		return ballot, unavailable("check existing ballot", err)
	}
	if exists {
		return ballot, &AlreadyVotedError{Category: candidate.Category}
	}

	ballot.CastAt = time.Now().UTC().Truncate(time.Microsecond)
	err = tx.QueryRowContext(ctx, `
		INSERT INTO votes (voter_id, candidate_id, category, cast_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, voterID, candidateID, candidate.Category, ballot.CastAt).Scan(&ballot.ID)
	if err != nil {
		if db.IsUniqueViolation(err) {
			// A concurrent call for the same (voter, category) committed first.
			return ballot, &AlreadyVotedError{Category: candidate.Category}
		}
		return ballot, unavailable("insert ballot", err)
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE candidates SET votes = votes + 1 WHERE id = $1
	`, candidateID)
	if err != nil {
		return ballot, unavailable("increment tally", err)
	}
	if n, err := res.RowsAffected(); err != nil || n != 1 {
		return ballot, unavailable("increment tally", errors.Join(errors.New("candidate row not updated"), err))
	}

	if err := tx.Commit(); err != nil {
		return ballot, unavailable("commit vote", err)
	}

	return ballot, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeAccepted
	case errors.Is(err, ErrAlreadyVoted):
		return metrics.OutcomeAlreadyVoted
	case errors.Is(err, ErrIneligible):
		return metrics.OutcomeIneligible
	case errors.Is(err, ErrUnknownCandidate):
		return metrics.OutcomeUnknownCandidate
	case errors.Is(err, ErrUnknownVoter):
		return metrics.OutcomeUnknownVoter
	}
	return metrics.OutcomeError
}
