// Copyright (c) 2026 Arif Mahmud.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ingest is the vote ingestion service, the orchestrator between the
HTTP adapters and the ledgers.

# Submission lifecycle

Each submission runs to a terminal state in one round trip:

	received → validated → persisted → flagged → aggregated → broadcast

or short-circuits to a rejection at validation (unknown candidate/choice)
or persistence (duplicate identity). Rejections are deterministic and come
back as a Result with Success=false and a Reason; only storage failures
(ledger.ErrUnavailable) are returned as errors, and the service never
retries them on its own.

Duplicate detection belongs to the storage layer: CastVote simply attempts
the append and treats the unique-constraint conflict as authoritative. On a
duplicate the identity ledger is not touched.

# Broadcast

After a successful write the service publishes the fresh snapshot through
the hub. Publishing is fire-and-forget; a delivery problem never invalidates
the vote or surfaces to the submitter.

# Synthetic traffic

The simulation driver submits through this same service with
Submission.Synthetic set. The flag exists so demo traffic is distinguishable
in logs; it buys no shortcut through validation or dedup.
*/
package ingest
