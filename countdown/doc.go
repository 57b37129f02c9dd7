// Copyright (c) 2026 Arif Mahmud.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package countdown computes and broadcasts the time remaining until the
election deadline.

Remaining is a pure function: given a now and a deadline it decomposes the
difference into days, hours, minutes and seconds by cascading integer
division of the millisecond count. Past the deadline it reports the terminal
state (all zero, IsOver true), which is stable because the deadline is fixed
at startup.

Clock wraps Remaining in a one-second ticker running on its own goroutine
and publishes each reading through the broadcast hub. It neither touches the
ledgers nor shares any lock with vote ingestion.
*/
package countdown
