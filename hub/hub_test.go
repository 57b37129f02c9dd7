// Copyright (c) 2026 Arif Mahmud.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package hub

import (
	"testing"
	"time"
)

func receiveEvent(t *testing.T, sub *Subscriber) Event {
	t.Helper()
	select {
	case ev, ok := <-sub.Events():
		if !ok {
			t.Fatal("Subscriber channel closed unexpectedly")
		}
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for event")
		return Event{}
	}
}

func TestPublishFansOutToAllSubscribers(t *testing.T) {
	h := New(nil)
	defer h.Close()

	sub1 := h.Subscribe()
	sub2 := h.Subscribe()

	h.Publish(Event{Name: EventVotes, Data: "payload"})

	for _, sub := range []*Subscriber{sub1, sub2} {
		ev := receiveEvent(t, sub)
		if ev.Name != EventVotes {
			t.Errorf("Expected %q event, got %q", EventVotes, ev.Name)
		}
	}
}

func TestSubscribeDeliversCatchup(t *testing.T) {
	catchup := []Event{
		{Name: EventVotes, Data: "tally"},
		{Name: EventReferendum, Data: "referendum"},
		{Name: EventCountdown, Data: "countdown"},
	}
	h := New(func() []Event { return catchup })
	defer h.Close()

	sub := h.Subscribe()

	// Catch-up events arrive without any Publish happening
	for i, want := range catchup {
		ev := receiveEvent(t, sub)
		if ev.Name != want.Name {
			t.Errorf("Catch-up event %d: expected %q, got %q", i, want.Name, ev.Name)
		}
	}
}

func TestSlowSubscriberDropsWithoutBlocking(t *testing.T) {
	h := New(nil)
	defer h.Close()

	slow := h.Subscribe()

	// Deliver far more events than the subscriber buffer holds. fanOut is
	// called directly so delivery is synchronous and the drop is
	// deterministic.
	for i := 0; i < subscriberSize*3; i++ {
		h.fanOut(Event{Name: EventCountdown, Data: i})
	}

	if got := len(slow.events); got != subscriberSize {
		t.Errorf("Expected buffer capped at %d events, got %d", subscriberSize, got)
	}

	// A fresh subscriber is unaffected by the saturated one
	fresh := h.Subscribe()
	h.fanOut(Event{Name: EventVotes, Data: "after"})
	ev := receiveEvent(t, fresh)
	if ev.Name != EventVotes {
		t.Errorf("Expected %q for the fresh subscriber, got %q", EventVotes, ev.Name)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	h := New(nil)
	defer h.Close()

	sub := h.Subscribe()
	h.Unsubscribe(sub)

	// Channel is closed on unsubscribe
	if _, ok := <-sub.Events(); ok {
		t.Error("Expected closed channel after Unsubscribe")
	}

	// Publishing afterwards must not panic on the removed subscriber
	h.fanOut(Event{Name: EventVotes})
}

func TestUnsubscribeTwiceIsSafe(t *testing.T) {
	h := New(nil)
	defer h.Close()

	sub := h.Subscribe()
	h.Unsubscribe(sub)
	h.Unsubscribe(sub)
}

func TestConcurrentSubscribeUnsubscribePublish(t *testing.T) {
	h := New(nil)
	defer h.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			sub := h.Subscribe()
			h.Unsubscribe(sub)
		}
	}()

	for i := 0; i < 100; i++ {
		h.Publish(Event{Name: EventCountdown, Data: i})
	}
	<-done
}

func TestCloseEndsAllSubscribers(t *testing.T) {
	h := New(nil)

	sub := h.Subscribe()
	h.Close()

	// Drain anything buffered; the channel must end up closed
	for {
		if _, ok := <-sub.Events(); !ok {
			break
		}
	}

	// After Close, Subscribe returns a dead subscriber and Publish is a no-op
	late := h.Subscribe()
	if _, ok := <-late.Events(); ok {
		t.Error("Expected closed channel for post-Close subscriber")
	}
	h.Publish(Event{Name: EventVotes})
	h.Close()
}
