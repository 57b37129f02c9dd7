// Copyright (c) 2026 Arif Mahmud.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP cross-cutting helpers for the live-tally
server.

  - WithLogging: per-request slog entries with method, path and duration
  - CORS: allows the configured frontend origin, handles preflight
  - JSONResponse / ErrorResponse: uniform JSON serialization
  - ParseJSONBody: request body decoding
  - GetClientIP: client address extraction (X-Forwarded-For, X-Real-IP,
    RemoteAddr), used for IP-derived voter identities
*/
package middleware
