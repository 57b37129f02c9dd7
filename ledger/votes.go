// Copyright (c) 2026 Arif Mahmud.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/arifmahmud/live-tally/models"
)

// VoteLedger is the append-only store of cast ballots.
type VoteLedger struct {
	db *sql.DB
}

func NewVoteLedger(db *sql.DB) *VoteLedger {
	return &VoteLedger{db: db}
}

// Append inserts a vote record. The UNIQUE constraint on identity resolves
// racing same-identity submissions: exactly one insert wins, the rest get
// ErrDuplicate.
func (l *VoteLedger) Append(ctx context.Context, v models.Vote) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO vote (id, identity, candidate_id, candidate_name, party, cast_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, v.ID, v.Identity, v.CandidateID, v.CandidateName, v.Party, v.CastAt)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("%w: append vote: %v", ErrUnavailable, err)
	}
	return nil
}

// CountsByGroup returns per-candidate ballot counts from a single query, so
// the caller can derive a consistent total.
func (l *VoteLedger) CountsByGroup(ctx context.Context) (map[models.CandidateID]int, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT candidate_id, COUNT(*) FROM vote GROUP BY candidate_id
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: count votes: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	counts := make(map[models.CandidateID]int)
	for rows.Next() {
		var id models.CandidateID
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("%w: scan vote count: %v", ErrUnavailable, err)
		}
		counts[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate vote counts: %v", ErrUnavailable, err)
	}
	return counts, nil
}

// Count returns the total number of cast ballots.
func (l *VoteLedger) Count(ctx context.Context) (int, error) {
	var n int
	if err := l.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vote`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: count votes: %v", ErrUnavailable, err)
	}
	return n, nil
}

// ReferendumLedger is the append-only store of referendum ballots.
type ReferendumLedger struct {
	db *sql.DB
}

func NewReferendumLedger(db *sql.DB) *ReferendumLedger {
	return &ReferendumLedger{db: db}
}

// Append inserts a referendum record, with the same uniqueness semantics as
// VoteLedger.Append.
func (l *ReferendumLedger) Append(ctx context.Context, v models.ReferendumVote) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO referendum_vote (id, identity, choice, cast_at)
		VALUES ($1, $2, $3, $4)
	`, v.ID, v.Identity, v.Choice, v.CastAt)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("%w: append referendum vote: %v", ErrUnavailable, err)
	}
	return nil
}

// CountsByGroup returns per-choice ballot counts from a single query.
func (l *ReferendumLedger) CountsByGroup(ctx context.Context) (map[models.Choice]int, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT choice, COUNT(*) FROM referendum_vote GROUP BY choice
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: count referendum votes: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	counts := make(map[models.Choice]int)
	for rows.Next() {
		var choice models.Choice
		var n int
		if err := rows.Scan(&choice, &n); err != nil {
			return nil, fmt.Errorf("%w: scan referendum count: %v", ErrUnavailable, err)
		}
		counts[choice] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate referendum counts: %v", ErrUnavailable, err)
	}
	return counts, nil
}
