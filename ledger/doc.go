// Copyright (c) 2026 Arif Mahmud.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger implements the three durable stores behind the tally service.

# Ledgers

  - IdentityLedger: voter identities and their has_voted flags
  - VoteLedger: append-only cast ballots
  - ReferendumLedger: append-only referendum ballots

Each is a thin, typed layer over *sql.DB. All mutation goes through Append
and the Upsert methods; these are the only serialization points in the
system. Because the guarantees come from the database (unique constraints,
single-statement upserts) rather than in-process locks, the semantics hold
even with several server instances sharing one store.

# Errors

Append returns ErrDuplicate when the storage layer rejects the insert on the
identity unique constraint. That conflict is the sole source of truth for
duplicate detection - there is deliberately no read-then-write pre-check,
which would race under concurrency.

All other storage failures wrap ErrUnavailable. Classify with errors.Is:

	err := votes.Append(ctx, v)
	switch {
	case errors.Is(err, ledger.ErrDuplicate):
		// identity already voted
	case errors.Is(err, ledger.ErrUnavailable):
		// storage down, caller may retry
	}
*/
package ledger
