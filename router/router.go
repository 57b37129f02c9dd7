// Copyright (c) 2026 Arif Mahmud.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/arifmahmud/live-tally/cliparse"
	"github.com/arifmahmud/live-tally/countdown"
	"github.com/arifmahmud/live-tally/handlers"
	"github.com/arifmahmud/live-tally/hub"
	"github.com/arifmahmud/live-tally/ingest"
	"github.com/arifmahmud/live-tally/ledger"
	"github.com/arifmahmud/live-tally/middleware"
	"github.com/arifmahmud/live-tally/tally"
)

// Deps carries the constructed core components into the HTTP layer.
type Deps struct {
	Config     cliparse.Config
	Service    *ingest.Service
	Aggregator *tally.Aggregator
	Clock      *countdown.Clock
	Hub        *hub.Hub
	Identities *ledger.IdentityLedger
	Votes      *ledger.VoteLedger
}

func NewRouter(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	votingHandler := handlers.NewVotingHandler(d.Service, d.Aggregator, d.Clock, d.Config)
	electionHandler := handlers.NewElectionHandler(d.Identities, d.Votes, d.Aggregator)
	eventsHandler := handlers.NewEventsHandler(d.Hub)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Voting operations
	mux.HandleFunc("GET /votes", middleware.WithLogging(votingHandler.GetVotes))
	mux.HandleFunc("POST /votes", middleware.WithLogging(votingHandler.SubmitVote))
	mux.HandleFunc("GET /votes/referendum", middleware.WithLogging(votingHandler.GetReferendum))
	mux.HandleFunc("POST /votes/referendum", middleware.WithLogging(votingHandler.SubmitReferendum))
	mux.HandleFunc("GET /votes/countdown", middleware.WithLogging(votingHandler.GetCountdown))

	// Election information
	mux.HandleFunc("GET /elections/insights", middleware.WithLogging(electionHandler.GetInsights))
	mux.HandleFunc("GET /elections/candidates", middleware.WithLogging(electionHandler.GetCandidates))
	mux.HandleFunc("GET /elections/candidates/{id}", middleware.WithLogging(electionHandler.GetCandidateByID))
	mux.HandleFunc("GET /voters/stats", middleware.WithLogging(electionHandler.GetVoterStats))

	// Live push stream (not wrapped in WithLogging: long-lived connection)
	mux.HandleFunc("GET /events", eventsHandler.Stream)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("live-tally API v1"))
	})

	return mux
}
