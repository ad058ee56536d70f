package frame

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

var epoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

func TestManualFrames(t *testing.T) {
	m := NewManual(epoch)

	var ran []int
	m.RequestFrame(func(time.Time) { ran = append(ran, 1) })
	id := m.RequestFrame(func(time.Time) { ran = append(ran, 2) })
	m.RequestFrame(func(time.Time) {
		ran = append(ran, 3)
		m.RequestFrame(func(time.Time) { ran = append(ran, 4) })
	})
	m.CancelFrame(id)

	if n := m.Frame(); n != 2 {
		t.Errorf("first Frame ran %d callbacks, want 2", n)
	}
	if m.PendingFrames() != 1 {
		t.Errorf("PendingFrames = %d, want 1", m.PendingFrames())
	}
	m.Frame()

	want := []int{1, 3, 4}
	if len(ran) != len(want) {
		t.Fatalf("ran %v, want %v", ran, want)
	}
	for i := range want {
		if ran[i] != want[i] {
			t.Fatalf("ran %v, want %v", ran, want)
		}
	}
}

func TestManualTimers(t *testing.T) {
	m := NewManual(epoch)

	var order []string
	var firedAt time.Time
	m.AfterFunc(200*time.Millisecond, func() {
		order = append(order, "b")
		firedAt = m.Now()
	})
	m.AfterFunc(100*time.Millisecond, func() { order = append(order, "a") })
	stopped := m.AfterFunc(150*time.Millisecond, func() { order = append(order, "x") })

	if !stopped.Stop() {
		t.Error("Stop on a pending timer returned false")
	}
	if stopped.Stop() {
		t.Error("second Stop returned true")
	}

	m.Advance(199 * time.Millisecond)
	if len(order) != 1 || order[0] != "a" {
		t.Fatalf("after 199ms fired %v, want [a]", order)
	}
	m.Advance(time.Millisecond)
	if len(order) != 2 || order[1] != "b" {
		t.Fatalf("after 200ms fired %v, want [a b]", order)
	}
	if !firedAt.Equal(epoch.Add(200 * time.Millisecond)) {
		t.Errorf("timer saw clock %v", firedAt)
	}
	if m.PendingTimers() != 0 {
		t.Errorf("PendingTimers = %d", m.PendingTimers())
	}
}

func TestDebouncer(t *testing.T) {
	m := NewManual(epoch)
	d := NewDebouncer(m, 200*time.Millisecond)

	calls := 0
	d.Trigger(func() { calls++ })
	m.Advance(150 * time.Millisecond)
	d.Trigger(func() { calls++ })
	m.Advance(150 * time.Millisecond)
	if calls != 0 {
		t.Fatalf("debounced function ran early (%d calls)", calls)
	}
	if !d.Pending() {
		t.Error("Pending() = false while waiting")
	}

	m.Advance(50 * time.Millisecond)
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	if d.Pending() {
		t.Error("Pending() = true after firing")
	}

	d.Trigger(func() { calls++ })
	if !d.Stop() {
		t.Error("Stop returned false with a run pending")
	}
	m.Advance(time.Second)
	if calls != 1 {
		t.Errorf("stopped run still fired, calls = %d", calls)
	}
}

func TestLoopRunsFramesAndPosts(t *testing.T) {
	l := NewLoop(200, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	frames := make(chan time.Time, 1)
	l.RequestFrame(func(now time.Time) { frames <- now })

	posted := make(chan struct{})
	l.Post(func() { close(posted) })

	timerFired := make(chan struct{})
	l.AfterFunc(5*time.Millisecond, func() { close(timerFired) })

	for name, ch := range map[string]<-chan struct{}{"post": posted, "timer": timerFired} {
		select {
		case <-ch:
		case <-time.After(2 * time.Second):
			t.Fatalf("%s did not run", name)
		}
	}
	select {
	case <-frames:
	case <-time.After(2 * time.Second):
		t.Fatal("frame did not run")
	}

	cancel()
	if err := <-done; err != context.Canceled {
		t.Errorf("Run returned %v, want context.Canceled", err)
	}
}

func TestLoopTimerStop(t *testing.T) {
	l := NewLoop(200, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = l.Run(ctx) }()

	var fired atomic.Bool
	timer := l.AfterFunc(20*time.Millisecond, func() { fired.Store(true) })
	if !timer.Stop() {
		t.Fatal("Stop returned false")
	}
	time.Sleep(60 * time.Millisecond)
	if fired.Load() {
		t.Error("stopped timer fired")
	}
}

func TestNewLoopDefaults(t *testing.T) {
	if got := NewLoop(0, nil).Interval(); got != time.Second/DefaultFPS {
		t.Errorf("Interval = %v", got)
	}
}
