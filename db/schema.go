// Copyright (c) 2026 Arif Mahmud.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Voter identities
CREATE TABLE IF NOT EXISTS voter (
    identity TEXT PRIMARY KEY,
    display_name TEXT,
    has_voted BOOLEAN NOT NULL DEFAULT FALSE,
    has_voted_referendum BOOLEAN NOT NULL DEFAULT FALSE,
    vote_timestamp TIMESTAMP,
    referendum_timestamp TIMESTAMP,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_voter_has_voted ON voter(has_voted);
CREATE INDEX IF NOT EXISTS idx_voter_has_voted_referendum ON voter(has_voted_referendum);

-- Cast ballots. The UNIQUE constraint on identity is the one and only
-- dedup mechanism: two racing submissions for the same identity resolve
-- here, not in application code.
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    identity TEXT NOT NULL UNIQUE,
    candidate_id TEXT NOT NULL CHECK (candidate_id IN ('candidate1', 'candidate2', 'candidate3')),
    candidate_name TEXT NOT NULL,
    party TEXT NOT NULL CHECK (party IN ('rice', 'scale')),
    cast_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_candidate_id ON vote(candidate_id);
CREATE INDEX IF NOT EXISTS idx_vote_party ON vote(party);

-- Referendum ballots, same uniqueness rule.
CREATE TABLE IF NOT EXISTS referendum_vote (
    id TEXT PRIMARY KEY,
    identity TEXT NOT NULL UNIQUE,
    choice TEXT NOT NULL CHECK (choice IN ('yes', 'no')),
    cast_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_referendum_vote_choice ON referendum_vote(choice);
`
