// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"database/sql"
	"errors"

	"github.com/preciouskorir/voting-system/models"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Resolve looks a voter up by the ID number printed on the voter roll.
// Format validation is the caller's concern.
func (s *Service) Resolve(ctx context.Context, idNumber string) (models.VoterRecord, error) {
	var v models.VoterRecord
	err := s.db.QueryRowContext(ctx, `
		SELECT id, id_number, full_name, county FROM users WHERE id_number = $1
	`, idNumber).Scan(&v.ID, &v.IDNumber, &v.FullName, &v.County)

	if errors.Is(err, sql.ErrNoRows) {
		return models.VoterRecord{}, ErrUnknownVoter
	}
	if err != nil {
		return models.VoterRecord{}, unavailable("resolve voter", err)
	}
	return v, nil
}

// Voter looks a voter up by internal id.
func (s *Service) Voter(ctx context.Context, voterID int64) (models.VoterRecord, error) {
	return lookupVoter(ctx, s.db, voterID)
}

func lookupVoter(ctx context.Context, q querier, voterID int64) (models.VoterRecord, error) {
	var v models.VoterRecord
	err := q.QueryRowContext(ctx, `
		SELECT id, id_number, full_name, county FROM users WHERE id = $1
	`, voterID).Scan(&v.ID, &v.IDNumber, &v.FullName, &v.County)

	if errors.Is(err, sql.ErrNoRows) {
		return models.VoterRecord{}, ErrUnknownVoter
	}
	if err != nil {
		return models.VoterRecord{}, unavailable("load voter", err)
	}
	return v, nil
}
