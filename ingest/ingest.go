// Copyright (c) 2026 Arif Mahmud.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ingest

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/arifmahmud/live-tally/hub"
	"github.com/arifmahmud/live-tally/ledger"
	"github.com/arifmahmud/live-tally/models"
	"github.com/arifmahmud/live-tally/tally"
)

// Reason classifies why a submission was rejected.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonInvalidChoice
	ReasonDuplicate
)

// User-facing rejection messages. The duplicate-vote message is shown to
// voters in Bengali.
const (
	msgInvalidCandidate   = "Invalid candidate ID"
	msgInvalidChoice      = `Invalid vote. Must be "yes" or "no"`
	msgAlreadyVoted       = "আপনি ইতিমধ্যে ভোট দিয়েছেন"
	msgAlreadyVotedRef    = "This NID has already voted in the referendum"
	msgVoteAccepted       = "Vote cast successfully"
	msgReferendumAccepted = "Referendum vote submitted successfully"
)

// Submission is one vote attempt. Synthetic marks simulation traffic; it
// flows through the exact same path as real submissions and is only
// surfaced in logs.
type Submission struct {
	Candidate   models.CandidateID
	Identity    string
	DisplayName *string
	Synthetic   bool
}

// ReferendumSubmission is one referendum vote attempt.
type ReferendumSubmission struct {
	Choice      models.Choice
	Identity    string
	DisplayName *string
	Synthetic   bool
}

// Result is the terminal outcome of a vote submission. Rejections
// (validation, duplicate) are Results, not errors; only storage failures
// come back as errors.
type Result struct {
	Success  bool
	Reason   Reason
	Message  string
	Snapshot models.TallySnapshot
}

// ReferendumResult is the referendum counterpart of Result.
type ReferendumResult struct {
	Success  bool
	Reason   Reason
	Message  string
	Snapshot models.ReferendumSnapshot
}

// Service validates submissions, enforces the at-most-one-vote invariant
// via the ledgers, and broadcasts fresh snapshots. All collaborators are
// injected at construction.
type Service struct {
	votes       *ledger.VoteLedger
	referendums *ledger.ReferendumLedger
	identities  *ledger.IdentityLedger
	agg         *tally.Aggregator
	hub         *hub.Hub
	now         func() time.Time
}

func NewService(votes *ledger.VoteLedger, referendums *ledger.ReferendumLedger, identities *ledger.IdentityLedger, agg *tally.Aggregator, h *hub.Hub) *Service {
	return &Service{
		votes:       votes,
		referendums: referendums,
		identities:  identities,
		agg:         agg,
		hub:         h,
		now:         time.Now,
	}
}

// CastVote runs one submission to a terminal state: validate, append to the
// vote ledger (the unique constraint decides duplicates), flag the
// identity, snapshot, broadcast.
func (s *Service) CastVote(ctx context.Context, sub Submission) (Result, error) {
	if !sub.Candidate.Valid() {
		return Result{Reason: ReasonInvalidChoice, Message: msgInvalidCandidate}, nil
	}

	now := s.now()
	v := models.Vote{
		ID:            uuid.NewString(),
		CandidateID:   sub.Candidate,
		CandidateName: sub.Candidate.Name(),
		Party:         sub.Candidate.Party(),
		Identity:      sub.Identity,
		CastAt:        now,
	}

	if err := s.votes.Append(ctx, v); err != nil {
		if errors.Is(err, ledger.ErrDuplicate) {
			// Loser of a same-identity race or a plain re-vote.
			// The identity ledger is left untouched.
			return Result{Reason: ReasonDuplicate, Message: msgAlreadyVoted}, nil
		}
		return Result{}, err
	}

	if _, err := s.identities.UpsertVoteFlag(ctx, sub.Identity, sub.DisplayName, now); err != nil {
		return Result{}, err
	}

	snapshot := s.agg.Snapshot(ctx)
	s.hub.Publish(hub.Event{Name: hub.EventVotes, Data: snapshot})

	slog.Info("vote recorded",
		"candidate", sub.Candidate,
		"party", sub.Candidate.Party(),
		"synthetic", sub.Synthetic,
		"total", snapshot.Total,
	)

	return Result{Success: true, Message: msgVoteAccepted, Snapshot: snapshot}, nil
}

// CastReferendum is the referendum counterpart of CastVote.
func (s *Service) CastReferendum(ctx context.Context, sub ReferendumSubmission) (ReferendumResult, error) {
	if !sub.Choice.Valid() {
		return ReferendumResult{Reason: ReasonInvalidChoice, Message: msgInvalidChoice}, nil
	}

	now := s.now()
	v := models.ReferendumVote{
		ID:       uuid.NewString(),
		Choice:   sub.Choice,
		Identity: sub.Identity,
		CastAt:   now,
	}

	if err := s.referendums.Append(ctx, v); err != nil {
		if errors.Is(err, ledger.ErrDuplicate) {
			return ReferendumResult{Reason: ReasonDuplicate, Message: msgAlreadyVotedRef}, nil
		}
		return ReferendumResult{}, err
	}

	if _, err := s.identities.UpsertReferendumFlag(ctx, sub.Identity, sub.DisplayName, now); err != nil {
		return ReferendumResult{}, err
	}

	snapshot := s.agg.ReferendumSnapshot(ctx)
	s.hub.Publish(hub.Event{Name: hub.EventReferendum, Data: snapshot})

	slog.Info("referendum vote recorded",
		"choice", sub.Choice,
		"synthetic", sub.Synthetic,
		"total", snapshot.Total,
	)

	return ReferendumResult{Success: true, Message: msgReferendumAccepted, Snapshot: snapshot}, nil
}
