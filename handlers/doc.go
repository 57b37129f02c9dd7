// Copyright (c) 2026 Arif Mahmud.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP adapters of the live-tally server. They
parse requests, resolve voter identities and map the ingestion service's
typed results onto status codes; the invariants live below them.

# Handler types

  - VotingHandler: tally and referendum reads, vote submission, countdown
  - ElectionHandler: insights, candidate listings, voter stats
  - EventsHandler: the Server-Sent Events push stream

Handlers receive their collaborators (ingestion service, aggregator, clock,
hub, ledgers) through constructors - nothing is looked up ambiently.

# Status mapping

	validation rejection  → 400
	duplicate submission  → 409
	storage unavailable   → 503

Both rejections are returned in the {success, message} envelope the
frontend consumes, with the Bengali duplicate-vote message intact.

# Voting flow

POST /votes accepts {"party": "rice"|"scale"} or a raw {"candidate_id"};
the party form maps deterministically onto its ballot candidate. Identity
is the X-Voter-NID header when supplied, otherwise a salted hash of the
client IP.

# Push stream

GET /events serves SSE frames named votes, referendum and countdown - the
same event vocabulary pushed on subscribe for catch-up.
*/
package handlers
