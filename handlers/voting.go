// Copyright (c) 2026 Arif Mahmud.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/arifmahmud/live-tally/cliparse"
	"github.com/arifmahmud/live-tally/countdown"
	"github.com/arifmahmud/live-tally/identity"
	"github.com/arifmahmud/live-tally/ingest"
	"github.com/arifmahmud/live-tally/middleware"
	"github.com/arifmahmud/live-tally/models"
	"github.com/arifmahmud/live-tally/tally"
)

type VotingHandler struct {
	svc   *ingest.Service
	agg   *tally.Aggregator
	clock *countdown.Clock
	cfg   cliparse.Config
}

func NewVotingHandler(svc *ingest.Service, agg *tally.Aggregator, clock *countdown.Clock, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{svc: svc, agg: agg, clock: clock, cfg: cfg}
}

// GetVotes handles GET /votes
func (h *VotingHandler) GetVotes(w http.ResponseWriter, r *http.Request) {
	snapshot := h.agg.Snapshot(r.Context())
	middleware.JSONResponse(w, http.StatusOK, models.DataResponse{
		Success: true,
		Data:    snapshot,
	})
}

// SubmitVote handles POST /votes
// Accepts either a candidate_id or a party name; party maps to its ballot
// candidate. The voter identity comes from the X-Voter-NID header, or a
// salted hash of the client IP when absent.
func (h *VotingHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var candidate models.CandidateID
	switch {
	case req.CandidateID != "":
		candidate = models.CandidateID(req.CandidateID)
	case req.Party != "":
		c, ok := models.CandidateForParty(models.Party(strings.ToLower(req.Party)))
		if !ok {
			middleware.ErrorResponse(w, http.StatusBadRequest, `Invalid party. Must be "rice" or "scale"`)
			return
		}
		candidate = c
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate_id or party is required")
		return
	}

	sub := ingest.Submission{
		Candidate: candidate,
		Identity:  identity.FromRequest(r, h.cfg.IdentitySalt),
	}

	res, err := h.svc.CastVote(r.Context(), sub)
	if err != nil {
		slog.Error("vote submission failed", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Failed to cast vote")
		return
	}

	if !res.Success {
		middleware.JSONResponse(w, rejectionStatus(res.Reason), models.VoteResponse{
			Success: false,
			Message: res.Message,
		})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		Success: true,
		Message: res.Message,
		Data:    &res.Snapshot,
	})
}

// GetReferendum handles GET /votes/referendum
func (h *VotingHandler) GetReferendum(w http.ResponseWriter, r *http.Request) {
	snapshot := h.agg.ReferendumSnapshot(r.Context())
	middleware.JSONResponse(w, http.StatusOK, models.DataResponse{
		Success: true,
		Data:    snapshot,
	})
}

// SubmitReferendum handles POST /votes/referendum
func (h *VotingHandler) SubmitReferendum(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitReferendumRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Vote == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Vote is required")
		return
	}

	sub := ingest.ReferendumSubmission{
		Choice:   models.Choice(strings.ToLower(req.Vote)),
		Identity: identity.FromRequest(r, h.cfg.IdentitySalt),
	}

	res, err := h.svc.CastReferendum(r.Context(), sub)
	if err != nil {
		slog.Error("referendum submission failed", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Failed to submit referendum vote")
		return
	}

	if !res.Success {
		middleware.JSONResponse(w, rejectionStatus(res.Reason), models.ReferendumResponse{
			Success: false,
			Message: res.Message,
		})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ReferendumResponse{
		Success: true,
		Message: res.Message,
		Data:    &res.Snapshot,
	})
}

// GetCountdown handles GET /votes/countdown
func (h *VotingHandler) GetCountdown(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.DataResponse{
		Success: true,
		Data:    h.clock.Current(),
	})
}

func rejectionStatus(reason ingest.Reason) int {
	if reason == ingest.ReasonDuplicate {
		return http.StatusConflict
	}
	return http.StatusBadRequest
}
