// Copyright (c) 2026 Arif Mahmud.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db owns schema creation for the live-tally server.

# Tables

Three tables back the three ledgers:

  - voter: one row per identity with has_voted / has_voted_referendum flags
  - vote: append-only cast ballots, identity UNIQUE
  - referendum_vote: append-only referendum ballots, identity UNIQUE

# Uniqueness

The at-most-one-vote-per-identity invariant lives in the storage layer. Each
ballot table carries a UNIQUE constraint on identity; the ledgers translate
the resulting constraint violation into a duplicate error. The application
performs no check-then-insert, so the guarantee holds across concurrent
submissions and across multiple server processes sharing one database.

# Indexes

Secondary indexes on the grouping columns:

  - vote.candidate_id, vote.party (tally aggregation)
  - referendum_vote.choice (referendum aggregation)
  - voter.has_voted, voter.has_voted_referendum (turnout stats)

The schema runs on both SQLite (modernc.org/sqlite) and PostgreSQL (lib/pq);
it sticks to the syntax both accept.
*/
package db
