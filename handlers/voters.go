// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/preciouskorir/voting-system/auth"
	"github.com/preciouskorir/voting-system/cliparse"
	"github.com/preciouskorir/voting-system/metrics"
	"github.com/preciouskorir/voting-system/middleware"
	"github.com/preciouskorir/voting-system/models"
	"github.com/preciouskorir/voting-system/voting"
)

type VoterHandler struct {
	svc *voting.Service
	cfg cliparse.Config
}

func NewVoterHandler(svc *voting.Service, cfg cliparse.Config) *VoterHandler {
	return &VoterHandler{svc: svc, cfg: cfg}
}

// Login handles POST /login
func (h *VoterHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.IPHashSalt)

	idNumber, err := auth.NormalizeIDNumber(req.IDNumber)
	if err != nil {
		h.svc.Metrics().IncrementLogin(metrics.LoginInvalid)
		middleware.ErrorResponse(w, http.StatusBadRequest, "ID number must be exactly 8 digits")
		return
	}

	voter, err := h.svc.Resolve(r.Context(), idNumber)
	if errors.Is(err, voting.ErrUnknownVoter) {
		h.svc.Metrics().IncrementLogin(metrics.LoginUnknown)
		slog.Warn("login rejected", "id_number", auth.MaskIDNumber(idNumber), "ip_hash", ipHash)
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid ID number")
		return
	}
	if err != nil {
		h.svc.Metrics().IncrementLogin(metrics.LoginError)
		writeServiceError(w, r, "login", err)
		return
	}

	h.svc.Metrics().IncrementLogin(metrics.LoginOK)
	slog.Info("voter logged in", "voter_id", voter.ID, "county", voter.County, "ip_hash", ipHash)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		UserID:   voter.ID,
		County:   voter.County,
		FullName: voter.FullName,
	})
}
