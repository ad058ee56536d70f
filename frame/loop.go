package frame

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultFPS is the frame rate used when a Loop is created with a
// non-positive rate.
const DefaultFPS = 60

type pendingFrame struct {
	id FrameID
	fn FrameFunc
}

// Loop is a Scheduler driven by a ticker on the goroutine that calls Run.
//
// Frame callbacks requested during a frame run on the following tick. Other
// goroutines hand work to the loop with Post; timers created by AfterFunc are
// delivered through Post as well.
type Loop struct {
	interval time.Duration
	logger   *slog.Logger

	mu     sync.Mutex
	nextID FrameID
	frames []pendingFrame
	posted []func()

	wake chan struct{}
}

// NewLoop creates a Loop ticking fps times per second. A nil logger
// discards diagnostics.
func NewLoop(fps int, logger *slog.Logger) *Loop {
	if fps <= 0 {
		fps = DefaultFPS
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loop{
		interval: time.Second / time.Duration(fps),
		logger:   logger,
		wake:     make(chan struct{}, 1),
	}
}

// Interval returns the time between ticks.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// RequestFrame implements Scheduler. It is safe to call from any goroutine.
func (l *Loop) RequestFrame(fn FrameFunc) FrameID {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	l.frames = append(l.frames, pendingFrame{id: l.nextID, fn: fn})
	return l.nextID
}

// CancelFrame implements Scheduler.
func (l *Loop) CancelFrame(id FrameID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, f := range l.frames {
		if f.id == id {
			l.frames = append(l.frames[:i], l.frames[i+1:]...)
			return
		}
	}
}

// Post queues fn to run on the loop goroutine. It never blocks.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.posted = append(l.posted, fn)
	l.mu.Unlock()
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

type loopTimer struct {
	t       *time.Timer
	stopped atomic.Bool
	fired   atomic.Bool
}

func (t *loopTimer) Stop() bool {
	if t.fired.Load() || !t.stopped.CompareAndSwap(false, true) {
		return false
	}
	t.t.Stop()
	return true
}

// AfterFunc implements Scheduler. fn runs on the loop goroutine; a Stop
// issued from the loop goroutine before fn starts always prevents it.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	lt := &loopTimer{}
	lt.t = time.AfterFunc(d, func() {
		l.Post(func() {
			if lt.stopped.Load() {
				return
			}
			lt.fired.Store(true)
			fn()
		})
	})
	return lt
}

// Run processes frames and posted work until ctx is done. It returns
// ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.logger.Debug("frame: loop started", "interval", l.interval)
	defer l.logger.Debug("frame: loop stopped")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
			l.runPosted()
		case now := <-ticker.C:
			l.runPosted()
			l.runFrames(now)
		}
	}
}

func (l *Loop) runPosted() {
	l.mu.Lock()
	posted := l.posted
	l.posted = nil
	l.mu.Unlock()

	for _, fn := range posted {
		fn()
	}
}

func (l *Loop) runFrames(now time.Time) {
	l.mu.Lock()
	frames := l.frames
	l.frames = nil
	l.mu.Unlock()

	for _, f := range frames {
		f.fn(now)
	}
}
