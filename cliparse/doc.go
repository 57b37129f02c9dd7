// Copyright (c) 2026 Arif Mahmud.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration for the live-tally server.

CLI flags take precedence; each falls back to an environment variable, and
main loads a .env file (godotenv) before parsing, so a local .env works the
same as exported vars.

  - -p / PORT: server port (default 5000)
  - -d / DATABASE_URL: database connection string (required)
  - -t / DATABASE_TYPE: "sqlite" (default) or "postgres"
  - -cors-origin / CORS_ORIGIN: allowed frontend origin
  - -deadline / ELECTION_DEADLINE: RFC3339 election end; when unset the
    server uses the next 17:00 Bangladesh time
  - -simulate / ENABLE_SIMULATION: turn on the demo traffic driver
  - -sim-interval / SIMULATION_INTERVAL: simulation tick period (default 5s)
  - -identity-salt / IDENTITY_SALT: salt for IP-derived identities (required)
*/
package cliparse
