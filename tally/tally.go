// Copyright (c) 2026 Arif Mahmud.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package tally derives aggregate snapshots from the ledgers on demand.
// Snapshots reflect only committed records; when a read fails the aggregator
// logs and returns a zero-valued snapshot so observers degrade instead of
// crashing.
package tally

import (
	"context"
	"log/slog"

	"github.com/arifmahmud/live-tally/ledger"
	"github.com/arifmahmud/live-tally/models"
)

// Aggregator computes tally snapshots from the vote and referendum ledgers.
// Safe for concurrent use; it holds no state of its own.
type Aggregator struct {
	votes       *ledger.VoteLedger
	referendums *ledger.ReferendumLedger
}

func NewAggregator(votes *ledger.VoteLedger, referendums *ledger.ReferendumLedger) *Aggregator {
	return &Aggregator{votes: votes, referendums: referendums}
}

// Snapshot returns the current per-candidate counts and their sum. Every
// candidate appears even with zero ballots. Counts and total come from one
// read, so total always equals the sum of the parts.
func (a *Aggregator) Snapshot(ctx context.Context) models.TallySnapshot {
	counts, err := a.votes.CountsByGroup(ctx)
	if err != nil {
		slog.Error("tally read failed, returning zero snapshot", "error", err)
		return models.TallySnapshot{}
	}

	s := models.TallySnapshot{
		Candidate1: counts[models.Candidate1],
		Candidate2: counts[models.Candidate2],
		Candidate3: counts[models.Candidate3],
	}
	s.Total = s.Candidate1 + s.Candidate2 + s.Candidate3
	return s
}

// ReferendumSnapshot returns the current yes/no counts and their sum, with
// the same consistency and degraded-read behavior as Snapshot.
func (a *Aggregator) ReferendumSnapshot(ctx context.Context) models.ReferendumSnapshot {
	s := models.ReferendumSnapshot{Question: models.ReferendumQuestion}

	counts, err := a.referendums.CountsByGroup(ctx)
	if err != nil {
		slog.Error("referendum read failed, returning zero snapshot", "error", err)
		return s
	}

	s.Yes = counts[models.ChoiceYes]
	s.No = counts[models.ChoiceNo]
	s.Total = s.Yes + s.No
	return s
}
