// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/preciouskorir/voting-system/middleware"
	"github.com/preciouskorir/voting-system/voting"
)

type CandidateHandler struct {
	svc *voting.Service
}

func NewCandidateHandler(svc *voting.Service) *CandidateHandler {
	return &CandidateHandler{svc: svc}
}

// List handles GET /candidates?voterId=
func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("voterId")
	if raw == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voterId is required")
		return
	}
	voterID, ok := parseID(raw)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voterId must be a positive integer")
		return
	}

	candidates, err := h.svc.EligibleCandidates(r.Context(), voterID)
	if err != nil {
		writeServiceError(w, r, "list candidates", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, candidates)
}
