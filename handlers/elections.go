// Copyright (c) 2026 Arif Mahmud.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"math"
	"net/http"

	"github.com/arifmahmud/live-tally/ledger"
	"github.com/arifmahmud/live-tally/middleware"
	"github.com/arifmahmud/live-tally/models"
	"github.com/arifmahmud/live-tally/tally"
)

type ElectionHandler struct {
	identities *ledger.IdentityLedger
	votes      *ledger.VoteLedger
	agg        *tally.Aggregator
}

func NewElectionHandler(identities *ledger.IdentityLedger, votes *ledger.VoteLedger, agg *tally.Aggregator) *ElectionHandler {
	return &ElectionHandler{identities: identities, votes: votes, agg: agg}
}

// GetInsights handles GET /elections/insights
func (h *ElectionHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	stats, err := h.identities.Stats(r.Context())
	if err != nil {
		slog.Error("failed to query voter stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	totalVotes, err := h.votes.Count(r.Context())
	if err != nil {
		slog.Error("failed to count votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	snapshot := h.agg.Snapshot(r.Context())
	candidatesCount := 0
	for _, c := range models.Candidates() {
		if snapshot.Count(c) > 0 {
			candidatesCount++
		}
	}

	insights := models.ElectionInsights{
		TotalVoters:             stats.TotalVoters,
		VotedCount:              stats.VotedCount,
		NotVotedCount:           stats.NotVotedCount,
		TotalVotes:              totalVotes,
		CandidatesCount:         candidatesCount,
		ReferendumParticipation: stats.ReferendumVotedCount,
	}
	if stats.TotalVoters > 0 {
		insights.TurnoutPercentage = roundPercent(float64(stats.VotedCount) / float64(stats.TotalVoters) * 100)
	}

	middleware.JSONResponse(w, http.StatusOK, models.DataResponse{Success: true, Data: insights})
}

// GetCandidates handles GET /elections/candidates
// Always enumerates all three candidates, including those with zero votes.
func (h *ElectionHandler) GetCandidates(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.DataResponse{
		Success: true,
		Data:    h.candidateSummaries(r),
	})
}

// GetCandidateByID handles GET /elections/candidates/{id}
func (h *ElectionHandler) GetCandidateByID(w http.ResponseWriter, r *http.Request) {
	id := models.CandidateID(r.PathValue("id"))
	if !id.Valid() {
		middleware.ErrorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	for _, c := range h.candidateSummaries(r) {
		if c.ID == id {
			middleware.JSONResponse(w, http.StatusOK, models.DataResponse{Success: true, Data: c})
			return
		}
	}
}

// GetVoterStats handles GET /voters/stats
func (h *ElectionHandler) GetVoterStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.identities.Stats(r.Context())
	if err != nil {
		slog.Error("failed to query voter stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DataResponse{Success: true, Data: stats})
}

func (h *ElectionHandler) candidateSummaries(r *http.Request) []models.CandidateSummary {
	snapshot := h.agg.Snapshot(r.Context())

	summaries := make([]models.CandidateSummary, 0, 3)
	for _, c := range models.Candidates() {
		s := models.CandidateSummary{
			ID:     c,
			Name:   c.Name(),
			Party:  c.Party(),
			Symbol: c.Symbol(),
			Votes:  snapshot.Count(c),
		}
		if snapshot.Total > 0 {
			s.Percentage = roundPercent(float64(s.Votes) / float64(snapshot.Total) * 100)
		}
		summaries = append(summaries, s)
	}
	return summaries
}

func roundPercent(p float64) float64 {
	return math.Round(p*100) / 100
}
