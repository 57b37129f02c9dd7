// Copyright (c) 2026 Arif Mahmud.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/arifmahmud/live-tally/hub"
	"github.com/arifmahmud/live-tally/models"
	"github.com/arifmahmud/live-tally/testutil"
)

// TestFullElectionWorkflow tests the complete end-to-end workflow:
// 1. An observer subscribes to the live stream
// 2. Voters cast ballots for each candidate
// 3. A duplicate submission is rejected
// 4. Voters answer the referendum
// 5. Tallies, candidate standings and insights reflect every ballot
// 6. The observer received live tally pushes
func TestFullElectionWorkflow(t *testing.T) {
	env := setupTestEnv(t)
	votingHandler := env.votingHandler()
	electionHandler := env.electionHandler()

	// Step 1: subscribe an observer before any ballots arrive
	sub := env.hub.Subscribe()
	defer env.hub.Unsubscribe(sub)

	// Step 2: three voters, two parties
	ballots := []struct {
		nid       string
		candidate string
	}{
		{"NID-100", "candidate1"},
		{"NID-200", "candidate2"},
		{"NID-300", "candidate1"},
	}
	for _, b := range ballots {
		req := testutil.MakeRequest("POST", "/votes", models.SubmitVoteRequest{CandidateID: b.candidate}, map[string]string{
			"X-Voter-NID": b.nid,
		})
		w := httptest.NewRecorder()
		votingHandler.SubmitVote(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("Step 2 - ballot from %s failed: %d - %s", b.nid, w.Code, w.Body.String())
		}
	}

	// Step 3: NID-100 tries again
	req := testutil.MakeRequest("POST", "/votes", models.SubmitVoteRequest{CandidateID: "candidate3"}, map[string]string{
		"X-Voter-NID": "NID-100",
	})
	w := httptest.NewRecorder()
	votingHandler.SubmitVote(w, req)
	if w.Code != http.StatusConflict {
		t.Fatalf("Step 3 - expected 409 for duplicate, got %d", w.Code)
	}

	// Step 4: two referendum answers, one from an election voter
	for _, r := range []struct {
		nid  string
		vote string
	}{
		{"NID-100", "yes"},
		{"NID-400", "no"},
	} {
		req := testutil.MakeRequest("POST", "/votes/referendum", models.SubmitReferendumRequest{Vote: r.vote}, map[string]string{
			"X-Voter-NID": r.nid,
		})
		w := httptest.NewRecorder()
		votingHandler.SubmitReferendum(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("Step 4 - referendum from %s failed: %d - %s", r.nid, w.Code, w.Body.String())
		}
	}

	// Step 5a: tally
	w = httptest.NewRecorder()
	votingHandler.GetVotes(w, testutil.MakeRequest("GET", "/votes", nil, nil))
	var tallyResp struct {
		Data models.TallySnapshot `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&tallyResp); err != nil {
		t.Fatal(err)
	}
	if tallyResp.Data.Candidate1 != 2 || tallyResp.Data.Candidate2 != 1 || tallyResp.Data.Total != 3 {
		t.Errorf("Step 5 - unexpected tally: %+v", tallyResp.Data)
	}

	// Step 5b: referendum
	w = httptest.NewRecorder()
	votingHandler.GetReferendum(w, testutil.MakeRequest("GET", "/votes/referendum", nil, nil))
	var refResp struct {
		Data models.ReferendumSnapshot `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&refResp); err != nil {
		t.Fatal(err)
	}
	if refResp.Data.Yes != 1 || refResp.Data.No != 1 || refResp.Data.Total != 2 {
		t.Errorf("Step 5 - unexpected referendum tally: %+v", refResp.Data)
	}

	// Step 5c: insights see 4 distinct identities, 3 election ballots
	w = httptest.NewRecorder()
	electionHandler.GetInsights(w, testutil.MakeRequest("GET", "/elections/insights", nil, nil))
	var insightsResp struct {
		Data models.ElectionInsights `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&insightsResp); err != nil {
		t.Fatal(err)
	}
	if insightsResp.Data.TotalVoters != 4 {
		t.Errorf("Step 5 - expected 4 known voters, got %d", insightsResp.Data.TotalVoters)
	}
	if insightsResp.Data.TotalVotes != 3 {
		t.Errorf("Step 5 - expected 3 total votes, got %d", insightsResp.Data.TotalVotes)
	}
	if insightsResp.Data.ReferendumParticipation != 2 {
		t.Errorf("Step 5 - expected 2 referendum participants, got %d", insightsResp.Data.ReferendumParticipation)
	}

	// Step 6: the observer saw live pushes for both streams
	sawVotes, sawReferendum := false, false
	timeout := time.After(2 * time.Second)
	for !(sawVotes && sawReferendum) {
		select {
		case ev := <-sub.Events():
			switch ev.Name {
			case hub.EventVotes:
				sawVotes = true
			case hub.EventReferendum:
				sawReferendum = true
			}
		case <-timeout:
			t.Fatalf("Step 6 - missing live pushes: votes=%v referendum=%v", sawVotes, sawReferendum)
		}
	}
}
