// Copyright (c) 2026 Arif Mahmud.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/arifmahmud/live-tally/models"
)

// IdentityLedger is the durable store of voter identities and their flags.
type IdentityLedger struct {
	db *sql.DB
}

func NewIdentityLedger(db *sql.DB) *IdentityLedger {
	return &IdentityLedger{db: db}
}

// Lookup returns the voter record for an identity, or (nil, nil) if absent.
func (l *IdentityLedger) Lookup(ctx context.Context, identity string) (*models.Voter, error) {
	var v models.Voter
	err := l.db.QueryRowContext(ctx, `
		SELECT identity, display_name, has_voted, has_voted_referendum, vote_timestamp, referendum_timestamp
		FROM voter WHERE identity = $1
	`, identity).Scan(
		&v.Identity, &v.DisplayName, &v.HasVoted, &v.HasVotedReferendum,
		&v.VoteTimestamp, &v.ReferendumTimestamp,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: lookup voter: %v", ErrUnavailable, err)
	}
	return &v, nil
}

// UpsertVoteFlag creates the voter record if missing and sets has_voted in a
// single statement, so the flag update is all-or-nothing. Returns the merged
// record.
func (l *IdentityLedger) UpsertVoteFlag(ctx context.Context, identity string, displayName *string, at time.Time) (*models.Voter, error) {
	var v models.Voter
	err := l.db.QueryRowContext(ctx, `
		INSERT INTO voter (identity, display_name, has_voted, vote_timestamp)
		VALUES ($1, $2, TRUE, $3)
		ON CONFLICT (identity) DO UPDATE SET
			has_voted = TRUE,
			vote_timestamp = excluded.vote_timestamp,
			display_name = COALESCE(voter.display_name, excluded.display_name)
		RETURNING identity, display_name, has_voted, has_voted_referendum, vote_timestamp, referendum_timestamp
	`, identity, displayName, at).Scan(
		&v.Identity, &v.DisplayName, &v.HasVoted, &v.HasVotedReferendum,
		&v.VoteTimestamp, &v.ReferendumTimestamp,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: upsert vote flag: %v", ErrUnavailable, err)
	}
	return &v, nil
}

// UpsertReferendumFlag is the referendum counterpart of UpsertVoteFlag.
func (l *IdentityLedger) UpsertReferendumFlag(ctx context.Context, identity string, displayName *string, at time.Time) (*models.Voter, error) {
	var v models.Voter
	err := l.db.QueryRowContext(ctx, `
		INSERT INTO voter (identity, display_name, has_voted_referendum, referendum_timestamp)
		VALUES ($1, $2, TRUE, $3)
		ON CONFLICT (identity) DO UPDATE SET
			has_voted_referendum = TRUE,
			referendum_timestamp = excluded.referendum_timestamp,
			display_name = COALESCE(voter.display_name, excluded.display_name)
		RETURNING identity, display_name, has_voted, has_voted_referendum, vote_timestamp, referendum_timestamp
	`, identity, displayName, at).Scan(
		&v.Identity, &v.DisplayName, &v.HasVoted, &v.HasVotedReferendum,
		&v.VoteTimestamp, &v.ReferendumTimestamp,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: upsert referendum flag: %v", ErrUnavailable, err)
	}
	return &v, nil
}

// Stats returns turnout counters for the insights endpoints.
func (l *IdentityLedger) Stats(ctx context.Context) (models.VoterStats, error) {
	var s models.VoterStats
	err := l.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COUNT(CASE WHEN has_voted THEN 1 END),
			COUNT(CASE WHEN has_voted_referendum THEN 1 END)
		FROM voter
	`).Scan(&s.TotalVoters, &s.VotedCount, &s.ReferendumVotedCount)

	if err != nil {
		return models.VoterStats{}, fmt.Errorf("%w: voter stats: %v", ErrUnavailable, err)
	}
	s.NotVotedCount = s.TotalVoters - s.VotedCount
	return s, nil
}
