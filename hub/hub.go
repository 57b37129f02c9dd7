// Copyright (c) 2026 Arif Mahmud.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package hub

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Event names pushed to subscribers.
const (
	EventVotes      = "votes"
	EventReferendum = "referendum"
	EventCountdown  = "countdown"
)

// Event is one discriminated payload pushed to every subscriber.
type Event struct {
	Name string
	Data any
}

const (
	inboxSize      = 64
	subscriberSize = 16
)

// Subscriber is one connected observer. Read events from Events(); the
// channel is closed when the subscriber is removed or the hub shuts down.
type Subscriber struct {
	id     string
	events chan Event
}

// ID returns the subscriber's opaque handle.
func (s *Subscriber) ID() string { return s.id }

// Events is the subscriber's delivery channel.
func (s *Subscriber) Events() <-chan Event { return s.events }

// Hub fans events out to all connected subscribers. Publishing is
// fire-and-forget: the caller enqueues to the hub inbox and returns; a
// single worker drains the inbox and delivers to each subscriber with a
// non-blocking send, so one slow observer never delays the others or the
// publisher.
type Hub struct {
	catchup func() []Event

	mu          sync.Mutex
	subscribers map[string]*Subscriber
	closed      bool

	inbox     chan Event
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a hub and starts its delivery worker. catchup, if non-nil, is
// invoked on every Subscribe to produce the events a late joiner needs to
// catch up (current tally, referendum and countdown states).
func New(catchup func() []Event) *Hub {
	h := &Hub{
		catchup:     catchup,
		subscribers: make(map[string]*Subscriber),
		inbox:       make(chan Event, inboxSize),
		done:        make(chan struct{}),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case ev := <-h.inbox:
			h.fanOut(ev)
		case <-h.done:
			return
		}
	}
}

// fanOut delivers one event to every registered subscriber. Holding the
// lock here is what makes a concurrent Unsubscribe safe: a channel is only
// closed under the same lock, so the non-blocking send can never hit a
// closed channel.
func (h *Hub) fanOut(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, s := range h.subscribers {
		select {
		case s.events <- ev:
		default:
			slog.Warn("subscriber buffer full, dropping event",
				"subscriber", s.id, "event", ev.Name)
		}
	}
}

// Publish enqueues an event for delivery to all current subscribers. It
// never blocks; if the inbox is saturated the event is dropped and logged.
func (h *Hub) Publish(ev Event) {
	select {
	case <-h.done:
	case h.inbox <- ev:
	default:
		slog.Warn("broadcast inbox full, dropping event", "event", ev.Name)
	}
}

// Subscribe registers a new observer and immediately queues the catch-up
// events so late joiners see current state without waiting for the next
// publish.
func (h *Hub) Subscribe() *Subscriber {
	s := &Subscriber{
		id:     uuid.NewString(),
		events: make(chan Event, subscriberSize),
	}

	var preload []Event
	if h.catchup != nil {
		preload = h.catchup()
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(s.events)
		return s
	}
	h.subscribers[s.id] = s
	for _, ev := range preload {
		select {
		case s.events <- ev:
		default:
		}
	}
	total := len(h.subscribers)
	h.mu.Unlock()

	slog.Info("subscriber connected", "subscriber", s.id, "total", total)
	return s
}

// Unsubscribe removes an observer and closes its channel. Safe to call for
// a subscriber that was already removed.
func (h *Hub) Unsubscribe(s *Subscriber) {
	h.mu.Lock()
	if _, ok := h.subscribers[s.id]; ok {
		delete(h.subscribers, s.id)
		close(s.events)
	}
	total := len(h.subscribers)
	h.mu.Unlock()

	slog.Info("subscriber disconnected", "subscriber", s.id, "total", total)
}

// Close stops the delivery worker and closes every subscriber channel.
// Publish becomes a no-op afterwards.
func (h *Hub) Close() {
	h.closeOnce.Do(func() {
		close(h.done)

		h.mu.Lock()
		h.closed = true
		for id, s := range h.subscribers {
			delete(h.subscribers, id)
			close(s.events)
		}
		h.mu.Unlock()
	})
}
