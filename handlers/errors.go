// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/preciouskorir/voting-system/middleware"
	"github.com/preciouskorir/voting-system/voting"
)

// writeServiceError maps a voting.Service error to an HTTP response.
// Store failures are logged here and answered with a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var already *voting.AlreadyVotedError
	switch {
	case errors.As(err, &already):
		middleware.ErrorResponse(w, http.StatusConflict, "You have already voted in the "+already.Category+" category")
	case errors.Is(err, voting.ErrAlreadyVoted):
		middleware.ErrorResponse(w, http.StatusConflict, "You have already voted in this category")
	case errors.Is(err, voting.ErrIneligible):
		middleware.ErrorResponse(w, http.StatusForbidden, "Candidate is not on your ballot")
	case errors.Is(err, voting.ErrUnknownVoter):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Voter not found")
	case errors.Is(err, voting.ErrUnknownCandidate):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Candidate not found")
	case errors.Is(err, voting.ErrUnknownCategory):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Unknown category")
	default:
		slog.Error(op+" failed", "error", err, "request_id", middleware.RequestID(r.Context()))
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Service temporarily unavailable")
	}
}

// parseID parses a positive integer identifier.
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
