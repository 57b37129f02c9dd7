// Copyright (c) 2026 Arif Mahmud.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"errors"
	"strings"
)

var (
	// ErrDuplicate is returned by Append when a record for the identity
	// already exists. It is derived from the storage-level unique
	// constraint, which is authoritative for dedup.
	ErrDuplicate = errors.New("record already exists for identity")

	// ErrUnavailable wraps storage failures (connection loss, timeout).
	// Callers may retry; the ledger never retries on its own.
	ErrUnavailable = errors.New("ledger storage unavailable")
)

// isUniqueViolation matches the unique-constraint error text of both
// supported drivers (modernc.org/sqlite and lib/pq).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
