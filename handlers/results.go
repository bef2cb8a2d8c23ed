// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/preciouskorir/voting-system/middleware"
	"github.com/preciouskorir/voting-system/models"
	"github.com/preciouskorir/voting-system/voting"
)

type ResultsHandler struct {
	svc *voting.Service
}

func NewResultsHandler(svc *voting.Service) *ResultsHandler {
	return &ResultsHandler{svc: svc}
}

// GetResults handles GET /results[?category=]
// Counts are read from the store on every request.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	var (
		tallies []models.CandidateTally
		err     error
	)
	if category := r.URL.Query().Get("category"); category != "" {
		tallies, err = h.svc.TallyByCategory(r.Context(), category)
	} else {
		tallies, err = h.svc.Tally(r.Context())
	}
	if err != nil {
		writeServiceError(w, r, "tally", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Categories: voting.GroupByCategory(tallies),
	})
}
