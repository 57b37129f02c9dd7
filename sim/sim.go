// Copyright (c) 2026 Arif Mahmud.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package sim generates demo voting traffic through the real ingestion
// path. It is enabled only by explicit configuration and absent from the
// production posture.
package sim

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/arifmahmud/live-tally/identity"
	"github.com/arifmahmud/live-tally/ingest"
	"github.com/arifmahmud/live-tally/models"
)

// Driver periodically casts a vote for a random candidate under a freshly
// synthesized identity, and about half the time a random referendum choice
// as well. Every submission goes through the ingestion service with the
// Synthetic flag set - never a privileged bypass.
type Driver struct {
	svc      *ingest.Service
	interval time.Duration

	done     chan struct{}
	stopOnce sync.Once
}

func NewDriver(svc *ingest.Service, interval time.Duration) *Driver {
	return &Driver{
		svc:      svc,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start launches the tick loop.
func (d *Driver) Start() {
	go d.loop()
}

func (d *Driver) loop() {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			d.tick()
		case <-d.done:
			return
		}
	}
}

func (d *Driver) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), d.interval)
	defer cancel()

	candidates := models.Candidates()
	sub := ingest.Submission{
		Candidate: candidates[rand.IntN(len(candidates))],
		Identity:  identity.Synthesize("AUTO"),
		Synthetic: true,
	}

	res, err := d.svc.CastVote(ctx, sub)
	switch {
	case err != nil:
		slog.Warn("simulated vote failed", "error", err)
	case res.Success:
		slog.Info("simulated vote cast", "candidate", sub.Candidate, "total", res.Snapshot.Total)
	}

	if rand.IntN(2) == 0 {
		choices := models.Choices()
		refSub := ingest.ReferendumSubmission{
			Choice:    choices[rand.IntN(len(choices))],
			Identity:  identity.Synthesize("REF"),
			Synthetic: true,
		}
		if _, err := d.svc.CastReferendum(ctx, refSub); err != nil {
			slog.Warn("simulated referendum vote failed", "error", err)
		}
	}
}

// Stop halts the tick loop. Safe to call more than once.
func (d *Driver) Stop() {
	d.stopOnce.Do(func() {
		close(d.done)
	})
}
