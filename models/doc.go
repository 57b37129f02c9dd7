// Copyright (c) 2026 Arif Mahmud.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types shared across the live-tally server.

# Enums

Three closed enums drive validation:

  - CandidateID: candidate1, candidate2, candidate3
  - Party: rice, scale
  - Choice: yes, no

The candidateId → party, candidateId → name and candidateId → symbol mappings
are static total functions over the candidate set. An unmapped candidateId is
rejected before anything is written.

# Records

Voter, Vote and ReferendumVote mirror the three ledger tables. Vote and
ReferendumVote are append-only and immutable once written; Voter carries the
per-identity has_voted / has_voted_referendum flags.

# Snapshots

TallySnapshot and ReferendumSnapshot are derived aggregates, recomputed from
the ledgers on demand and never persisted. Countdown is the decomposed time
remaining until the election deadline.

Request and response types for the HTTP layer live here as well, following the
convention that voter identities are never serialized back out.
*/
package models
