// Copyright (c) 2026 Arif Mahmud.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package countdown

import (
	"sync"
	"time"

	"github.com/arifmahmud/live-tally/hub"
	"github.com/arifmahmud/live-tally/models"
)

// Millisecond divisors for the cascade decomposition.
const (
	msPerDay    = 86400000
	msPerHour   = 3600000
	msPerMinute = 60000
	msPerSecond = 1000
)

// Remaining decomposes the time left until deadline. At or past the
// deadline it returns the terminal value: all fields zero, IsOver true.
func Remaining(now, deadline time.Time) models.Countdown {
	ms := deadline.Sub(now).Milliseconds()
	if ms <= 0 {
		return models.Countdown{IsOver: true, Deadline: deadline}
	}

	c := models.Countdown{Deadline: deadline}
	c.Days = int(ms / msPerDay)
	ms %= msPerDay
	c.Hours = int(ms / msPerHour)
	ms %= msPerHour
	c.Minutes = int(ms / msPerMinute)
	ms %= msPerMinute
	c.Seconds = int(ms / msPerSecond)
	return c
}

// NextDeadline returns the default election deadline: the next 17:00 in
// Bangladesh time. Computed once at startup; the deadline never rolls over
// afterwards, so the terminal countdown state is stable.
func NextDeadline(now time.Time) time.Time {
	loc, err := time.LoadLocation("Asia/Dhaka")
	if err != nil {
		loc = time.FixedZone("BST", 6*60*60)
	}

	local := now.In(loc)
	end := time.Date(local.Year(), local.Month(), local.Day(), 17, 0, 0, 0, loc)
	if !local.Before(end) {
		end = end.Add(24 * time.Hour)
	}
	return end
}

// Clock pushes a countdown event through the hub once per second. It runs
// on its own ticker goroutine, unaffected by request volume, and keeps
// ticking past the deadline (reporting the terminal value).
type Clock struct {
	deadline time.Time
	hub      *hub.Hub
	interval time.Duration
	now      func() time.Time

	done     chan struct{}
	stopOnce sync.Once
}

func NewClock(deadline time.Time, h *hub.Hub) *Clock {
	return &Clock{
		deadline: deadline,
		hub:      h,
		interval: time.Second,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Current returns the countdown as of now, for catch-up and the HTTP endpoint.
func (c *Clock) Current() models.Countdown {
	return Remaining(c.now(), c.deadline)
}

// Start launches the tick loop.
func (c *Clock) Start() {
	go c.loop()
}

func (c *Clock) loop() {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.hub.Publish(hub.Event{Name: hub.EventCountdown, Data: c.Current()})
		case <-c.done:
			return
		}
	}
}

// Stop halts the tick loop. Safe to call more than once.
func (c *Clock) Stop() {
	c.stopOnce.Do(func() {
		close(c.done)
	})
}
