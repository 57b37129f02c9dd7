// Copyright (c) 2026 Arif Mahmud.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table for the live-tally server using
Go 1.22+ method/pattern routing.

	GET  /health
	GET  /votes                      current tally snapshot
	POST /votes                      cast a vote
	GET  /votes/referendum           current referendum snapshot
	POST /votes/referendum           submit a referendum choice
	GET  /votes/countdown            time remaining
	GET  /elections/insights         turnout and totals
	GET  /elections/candidates       candidate listing with counts
	GET  /elections/candidates/{id}  single candidate
	GET  /voters/stats               identity ledger counters
	GET  /events                     Server-Sent Events push stream

NewRouter receives every core component through the Deps struct; the router
itself holds no state.
*/
package router
