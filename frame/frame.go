package frame

import "time"

// FrameFunc is a frame callback. now is the scheduler's notion of the
// current time.
type FrameFunc func(now time.Time)

// FrameID identifies a requested frame. The zero ID is never issued.
type FrameID uint64

// Timer is a pending delayed function.
type Timer interface {
	// Stop prevents the function from running. It returns false if the
	// function already ran or the timer was already stopped.
	Stop() bool
}

// Scheduler runs callbacks on one logical thread.
type Scheduler interface {
	// RequestFrame schedules fn to run once on the next frame.
	RequestFrame(fn FrameFunc) FrameID

	// CancelFrame cancels a pending frame request. Unknown or already run
	// IDs are ignored.
	CancelFrame(id FrameID)

	// AfterFunc runs fn once after d.
	AfterFunc(d time.Duration, fn func()) Timer
}

// Poster is implemented by schedulers that accept work from other
// goroutines. Work posted runs on the scheduler's thread.
type Poster interface {
	Post(fn func())
}
