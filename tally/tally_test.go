// Copyright (c) 2026 Arif Mahmud.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"context"
	"testing"

	"github.com/arifmahmud/live-tally/ledger"
	"github.com/arifmahmud/live-tally/models"
	"github.com/arifmahmud/live-tally/testutil"
)

func TestSnapshot_EmptyLedger(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	agg := NewAggregator(ledger.NewVoteLedger(conn), ledger.NewReferendumLedger(conn))

	s := agg.Snapshot(context.Background())

	// Every candidate is enumerated even with no ballots
	if s.Candidate1 != 0 || s.Candidate2 != 0 || s.Candidate3 != 0 || s.Total != 0 {
		t.Errorf("Expected all-zero snapshot, got %+v", s)
	}
}

func TestSnapshot_Conservation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	agg := NewAggregator(ledger.NewVoteLedger(conn), ledger.NewReferendumLedger(conn))

	// Three distinct identities: candidate1, candidate2, candidate1
	testutil.SeedVote(t, conn, "NID-A", models.Candidate1)
	testutil.SeedVote(t, conn, "NID-B", models.Candidate2)
	testutil.SeedVote(t, conn, "NID-C", models.Candidate1)

	s := agg.Snapshot(context.Background())

	if s.Candidate1 != 2 || s.Candidate2 != 1 || s.Candidate3 != 0 {
		t.Errorf("Expected {2,1,0}, got %+v", s)
	}
	if s.Total != 3 {
		t.Errorf("Expected total 3, got %d", s.Total)
	}
	if s.Total != s.Candidate1+s.Candidate2+s.Candidate3 {
		t.Errorf("Conservation violated: total %d != sum %d", s.Total, s.Candidate1+s.Candidate2+s.Candidate3)
	}
}

func TestReferendumSnapshot(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	agg := NewAggregator(ledger.NewVoteLedger(conn), ledger.NewReferendumLedger(conn))

	testutil.SeedReferendumVote(t, conn, "NID-A", models.ChoiceYes)
	testutil.SeedReferendumVote(t, conn, "NID-B", models.ChoiceYes)
	testutil.SeedReferendumVote(t, conn, "NID-C", models.ChoiceNo)

	s := agg.ReferendumSnapshot(context.Background())

	if s.Yes != 2 || s.No != 1 || s.Total != 3 {
		t.Errorf("Expected {yes:2, no:1, total:3}, got %+v", s)
	}
	if s.Question != models.ReferendumQuestion {
		t.Errorf("Expected referendum question to be filled in, got %q", s.Question)
	}
}

func TestSnapshot_DegradesToZeroOnReadFailure(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	agg := NewAggregator(ledger.NewVoteLedger(conn), ledger.NewReferendumLedger(conn))

	// Close the handle so reads fail
	conn.Close()

	s := agg.Snapshot(context.Background())
	if s != (models.TallySnapshot{}) {
		t.Errorf("Expected zero snapshot on read failure, got %+v", s)
	}

	rs := agg.ReferendumSnapshot(context.Background())
	if rs.Yes != 0 || rs.No != 0 || rs.Total != 0 {
		t.Errorf("Expected zero referendum snapshot on read failure, got %+v", rs)
	}
}
