// Copyright (c) 2026 Arif Mahmud.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package identity resolves the opaque voter identity a ballot is
// attributed to. In production the identity is caller-supplied (an NID
// header) or derived from the client address; the simulation driver
// synthesizes throwaway identities instead.
package identity

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	"github.com/google/uuid"

	"github.com/arifmahmud/live-tally/middleware"
)

// NIDHeader carries a voter-supplied national ID number.
const NIDHeader = "X-Voter-NID"

// FromRequest returns the identity for an HTTP submission: the NID header
// when present, otherwise a salted hash of the client IP. Hashing keeps raw
// addresses out of the ledgers while still deduplicating per address.
func FromRequest(r *http.Request, salt string) string {
	if nid := r.Header.Get(NIDHeader); nid != "" {
		return nid
	}
	return "IP-" + HashIP(middleware.GetClientIP(r), salt)
}

// HashIP creates a one-way salted hash of an IP address. The first 64 bits
// are enough for deduplication.
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:8])
}

// Synthesize returns a fresh never-seen identity for simulation traffic.
// By construction it always passes dedup; that is the point of demo load.
func Synthesize(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
