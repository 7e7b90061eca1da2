// Package beat plans drift-free metronome ticks against a monotonic clock.
//
// A Scheduler does not produce sound and does not block: each Plan call
// returns the tick timestamps that fall inside a short lookahead window of
// "now", for an audio sink to realize. Ticks form an arithmetic sequence
// anchored at the moment the scheduler started; the internal cursor
// advances by exactly one beat interval per emitted tick and is never
// re-derived from the current time, so irregular polling (for example once
// per rendered frame) cannot accumulate into timing error.
//
// Tempo changes take effect on the next emitted interval. Stopping the
// scheduler discards the cursor; a later start anchors a fresh sequence.
//
// A Scheduler is a single-owner object: at most one goroutine may call
// into it per tempo context.
package beat
