// Copyright (c) 2026 Arif Mahmud.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the live-tally election server.

live-tally accepts one vote and one referendum choice per voter identity,
keeps running aggregate counts, and pushes tally and countdown updates to
every connected observer over Server-Sent Events.

# Starting the Server

The server reads configuration from a .env file, environment variables or
CLI flags:

	DATABASE_URL=file:election.db IDENTITY_SALT=... go run .

Or with flags:

	go run . -p 5000 -d file:election.db -identity-salt secret

Demo mode adds synthetic traffic through the same ingestion path:

	ENABLE_SIMULATION=true go run . -d file:election.db -identity-salt secret

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file or PostgreSQL connection string
  - IDENTITY_SALT (-identity-salt): secret for IP-derived voter identities

Optional settings:

  - PORT (-p): server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - ELECTION_DEADLINE (-deadline): RFC3339 end time; defaults to the next
    17:00 Bangladesh time
  - CORS_ORIGIN, ENABLE_SIMULATION, SIMULATION_INTERVAL

# Architecture

One-vote-per-identity is enforced by a storage-level unique constraint, not
application checks, so it holds under concurrent submissions and across
server instances sharing a database.

  - ledger: identity / vote / referendum stores over database/sql
  - tally: on-demand aggregate snapshots
  - ingest: submission orchestration (validate, append, flag, broadcast)
  - hub: fan-out of push events to subscribers
  - countdown: deadline clock on its own 1s schedule
  - sim: optional demo traffic driver
  - handlers, router, middleware: the HTTP adapter layer
  - models, db, cliparse: types, schema, configuration

See package documentation for each component.
*/
package main
