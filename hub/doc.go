// Copyright (c) 2026 Arif Mahmud.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package hub is the broadcast fan-out for live tally and countdown events.

# Model

The hub owns an inbox channel and one worker goroutine. Publish enqueues and
returns; the worker delivers to each subscriber's private buffered channel
with a non-blocking send. Delivery failure to one subscriber (a full buffer)
is logged and isolated - it never raises to the publisher and never affects
other subscribers.

The subscriber set has its own mutex, independent of any storage lock, so
broadcast can never stall vote ingestion.

# Catch-up

A hub is constructed with a catch-up callback. Every Subscribe call invokes
it and queues the returned events first, so an observer that connects after
N votes immediately sees a snapshot with total N rather than waiting for the
next cast.

# Lifecycle

Close stops the worker and closes all subscriber channels; stream handlers
ranging over Subscriber.Events() terminate naturally. The hub is handed to
its users (ingestion service, countdown clock, event handlers) at
construction time - there is no package-level instance.
*/
package hub
