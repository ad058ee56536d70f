// Package frame schedules a carousel's work on a single logical thread.
//
// A Scheduler offers the three primitives the carousel needs: one-shot frame
// callbacks in the style of requestAnimationFrame, their cancellation, and
// delayed functions. Every callback a Scheduler runs executes on the same
// logical thread, so callers may mutate shared state from callbacks without
// locking.
//
// Implementations:
//
//   - Loop: a ticker-driven goroutine for native hosts
//   - Manual: a hand-cranked clock for tests and offline rendering
//
// Browser hosts provide their own Scheduler on top of the page's animation
// frames.
package frame
