// Copyright (c) 2026 Arif Mahmud.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// CandidateID identifies one of the three fixed ballot candidates.
type CandidateID string

const (
	Candidate1 CandidateID = "candidate1"
	Candidate2 CandidateID = "candidate2"
	Candidate3 CandidateID = "candidate3"
)

// Party is the electoral symbol a candidate runs under.
type Party string

const (
	PartyRice  Party = "rice"
	PartyScale Party = "scale"
)

// Choice is a referendum ballot value.
type Choice string

const (
	ChoiceYes Choice = "yes"
	ChoiceNo  Choice = "no"
)

// ReferendumQuestion is the fixed question put to voters alongside the election.
const ReferendumQuestion = "Do you support digital voting for future elections?"

type candidateMeta struct {
	name   string
	party  Party
	symbol string
}

// The candidate set is closed; these mappings are total over it and never
// inferred from input.
var candidateTable = map[CandidateID]candidateMeta{
	Candidate1: {name: "ধানের শীষ - আওয়ামী লীগ", party: PartyRice, symbol: "ধানের শীষ"},
	Candidate2: {name: "দাঁড়িপাল্লা - বিএনপি", party: PartyScale, symbol: "দাঁড়িপাল্লা"},
	Candidate3: {name: "ধানের শীষ - জাতীয় পার্টি", party: PartyRice, symbol: "ধানের শীষ"},
}

// Candidates returns the closed candidate set in ballot order.
func Candidates() []CandidateID {
	return []CandidateID{Candidate1, Candidate2, Candidate3}
}

// Valid reports whether c is a member of the closed candidate set.
func (c CandidateID) Valid() bool {
	_, ok := candidateTable[c]
	return ok
}

// Name returns the candidate's full display name.
func (c CandidateID) Name() string {
	return candidateTable[c].name
}

// Party returns the party the candidate runs under.
func (c CandidateID) Party() Party {
	return candidateTable[c].party
}

// Symbol returns the candidate's ballot symbol.
func (c CandidateID) Symbol() string {
	return candidateTable[c].symbol
}

// CandidateForParty maps the two public-facing party names to the candidate
// the vote endpoint records for them.
func CandidateForParty(p Party) (CandidateID, bool) {
	switch p {
	case PartyRice:
		return Candidate1, true
	case PartyScale:
		return Candidate2, true
	default:
		return "", false
	}
}

// Valid reports whether ch is "yes" or "no".
func (ch Choice) Valid() bool {
	return ch == ChoiceYes || ch == ChoiceNo
}

// Choices returns both referendum choices.
func Choices() []Choice {
	return []Choice{ChoiceYes, ChoiceNo}
}

// Domain records

// Voter is the identity ledger record for one voter identity.
type Voter struct {
	Identity            string     `json:"identity"`
	DisplayName         *string    `json:"display_name,omitempty"`
	HasVoted            bool       `json:"has_voted"`
	HasVotedReferendum  bool       `json:"has_voted_referendum"`
	VoteTimestamp       *time.Time `json:"vote_timestamp,omitempty"`
	ReferendumTimestamp *time.Time `json:"referendum_timestamp,omitempty"`
}

// Vote is an immutable cast-ballot record. At most one exists per identity.
type Vote struct {
	ID            string      `json:"id"`
	CandidateID   CandidateID `json:"candidate_id"`
	CandidateName string      `json:"candidate_name"`
	Party         Party       `json:"party"`
	Identity      string      `json:"-"` // Never expose in JSON
	CastAt        time.Time   `json:"cast_at"`
}

// ReferendumVote is an immutable referendum record. At most one exists per identity.
type ReferendumVote struct {
	ID       string    `json:"id"`
	Choice   Choice    `json:"choice"`
	Identity string    `json:"-"` // Never expose in JSON
	CastAt   time.Time `json:"cast_at"`
}

// Snapshots

// TallySnapshot is a point-in-time aggregate of the vote ledger. Derived,
// never stored; Total always equals the sum of the per-candidate counts.
type TallySnapshot struct {
	Candidate1 int `json:"candidate1"`
	Candidate2 int `json:"candidate2"`
	Candidate3 int `json:"candidate3"`
	Total      int `json:"total"`
}

// Count returns the snapshot count for a candidate.
func (s TallySnapshot) Count(c CandidateID) int {
	switch c {
	case Candidate1:
		return s.Candidate1
	case Candidate2:
		return s.Candidate2
	case Candidate3:
		return s.Candidate3
	default:
		return 0
	}
}

// ReferendumSnapshot is a point-in-time aggregate of the referendum ledger.
type ReferendumSnapshot struct {
	Question string `json:"question"`
	Yes      int    `json:"yes"`
	No       int    `json:"no"`
	Total    int    `json:"total"`
}

// Countdown is the time remaining until the election deadline. Once IsOver is
// true it stays true for that deadline.
type Countdown struct {
	Days     int       `json:"days"`
	Hours    int       `json:"hours"`
	Minutes  int       `json:"minutes"`
	Seconds  int       `json:"seconds"`
	IsOver   bool      `json:"isOver"`
	Deadline time.Time `json:"deadline"`
}

// Request types

type SubmitVoteRequest struct {
	CandidateID string `json:"candidate_id"`
	Party       string `json:"party"`
}

type SubmitReferendumRequest struct {
	Vote string `json:"vote"`
}

// Response types

type VoteResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    *TallySnapshot `json:"data,omitempty"`
}

type ReferendumResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    *ReferendumSnapshot `json:"data,omitempty"`
}

// DataResponse wraps read-only query results.
type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type CandidateSummary struct {
	ID         CandidateID `json:"id"`
	Name       string      `json:"name"`
	Party      Party       `json:"party"`
	Symbol     string      `json:"symbol"`
	Votes      int         `json:"votes"`
	Percentage float64     `json:"percentage"`
}

type VoterStats struct {
	TotalVoters          int `json:"total_voters"`
	VotedCount           int `json:"voted_count"`
	ReferendumVotedCount int `json:"referendum_voted_count"`
	NotVotedCount        int `json:"not_voted_count"`
}

type ElectionInsights struct {
	TotalVoters             int     `json:"total_voters"`
	VotedCount              int     `json:"voted_count"`
	NotVotedCount           int     `json:"not_voted_count"`
	TotalVotes              int     `json:"total_votes"`
	CandidatesCount         int     `json:"candidates_count"`
	ReferendumParticipation int     `json:"referendum_participation"`
	TurnoutPercentage       float64 `json:"turnout_percentage"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
