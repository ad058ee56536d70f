package frame

import (
	"slices"
	"sync"
	"time"
)

// Manual is a Scheduler whose clock only moves when told to. Frames run on
// Frame and timers fire on Advance, both on the calling goroutine.
type Manual struct {
	mu     sync.Mutex
	now    time.Time
	nextID FrameID
	frames []pendingFrame
	timers []*manualTimer
	seq    uint64
}

type manualTimer struct {
	m    *Manual
	at   time.Time
	seq  uint64
	fn   func()
	done bool
}

func (t *manualTimer) Stop() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	t.m.timers = slices.DeleteFunc(t.m.timers, func(o *manualTimer) bool { return o == t })
	return true
}

// NewManual creates a Manual scheduler whose clock reads start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the scheduler's current time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// RequestFrame implements Scheduler.
func (m *Manual) RequestFrame(fn FrameFunc) FrameID {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	m.frames = append(m.frames, pendingFrame{id: m.nextID, fn: fn})
	return m.nextID
}

// CancelFrame implements Scheduler.
func (m *Manual) CancelFrame(id FrameID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frames = slices.DeleteFunc(m.frames, func(f pendingFrame) bool { return f.id == id })
}

// AfterFunc implements Scheduler.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTimer{m: m, at: m.now.Add(d), seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// PendingFrames returns how many frame requests are waiting.
func (m *Manual) PendingFrames() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.frames)
}

// PendingTimers returns how many timers have not fired or been stopped.
func (m *Manual) PendingTimers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

// Frame runs the frame callbacks pending at the time of the call and returns
// how many ran. Callbacks requested while it runs wait for the next Frame.
func (m *Manual) Frame() int {
	m.mu.Lock()
	frames := m.frames
	m.frames = nil
	now := m.now
	m.mu.Unlock()

	for _, f := range frames {
		f.fn(now)
	}
	return len(frames)
}

// Advance moves the clock forward by d, firing due timers in deadline
// order. Each timer sees the clock at its own deadline.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	end := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.nextDue(end)
		if next == nil {
			m.now = end
			m.mu.Unlock()
			return
		}
		next.done = true
		m.timers = slices.DeleteFunc(m.timers, func(o *manualTimer) bool { return o == next })
		if next.at.After(m.now) {
			m.now = next.at
		}
		m.mu.Unlock()

		next.fn()
	}
}

func (m *Manual) nextDue(end time.Time) *manualTimer {
	var best *manualTimer
	for _, t := range m.timers {
		if t.at.After(end) {
			continue
		}
		if best == nil || t.at.Before(best.at) || (t.at.Equal(best.at) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}
