// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"errors"
	"fmt"
)

// Rejections are terminal: retrying the same call gives the same answer.
// ErrStoreUnavailable is the only error worth retrying, and only by
// repeating the whole operation.
var (
	ErrNotFound         = errors.New("not found")
	ErrUnknownVoter     = fmt.Errorf("voter %w", ErrNotFound)
	ErrUnknownCandidate = fmt.Errorf("candidate %w", ErrNotFound)
	ErrUnknownCategory  = fmt.Errorf("category %w", ErrNotFound)
	ErrIneligible       = errors.New("candidate is not on this voter's ballot")
	ErrAlreadyVoted     = errors.New("already voted")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// AlreadyVotedError carries the category in which the voter already holds a
// ballot. It matches ErrAlreadyVoted under errors.Is.
type AlreadyVotedError struct {
	Category string
}

func (e *AlreadyVotedError) Error() string {
	return fmt.Sprintf("already voted in the %s category", e.Category)
}

func (e *AlreadyVotedError) Is(target error) bool {
	return target == ErrAlreadyVoted
}

// unavailable wraps an unexpected store failure so callers can tell it apart
// from a rejection.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}
