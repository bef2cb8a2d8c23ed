// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/preciouskorir/voting-system/middleware"
	"github.com/preciouskorir/voting-system/models"
	"github.com/preciouskorir/voting-system/voting"
)

type VotingHandler struct {
	svc *voting.Service
}

func NewVotingHandler(svc *voting.Service) *VotingHandler {
	return &VotingHandler{svc: svc}
}

// CastVote handles POST /vote
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.VoterID <= 0 || req.CandidateID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voterId and candidateId are required")
		return
	}

	ballot, err := h.svc.CastVote(r.Context(), req.VoterID, req.CandidateID)
	if err != nil {
		writeServiceError(w, r, "cast vote", err)
		return
	}

	slog.Info("ballot cast",
		"ballot_id", ballot.ID,
		"voter_id", ballot.VoterID,
		"category", ballot.Category,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		Success:  true,
		Message:  "Vote cast successfully",
		BallotID: ballot.ID,
		Category: ballot.Category,
	})
}
