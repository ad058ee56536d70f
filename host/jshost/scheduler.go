//go:build js && wasm

package jshost

import (
	"syscall/js"
	"time"

	"github.com/gogpu/carousel/frame"
)

// Scheduler is a frame.Scheduler on the page's event loop.
type Scheduler struct {
	window  js.Value
	nextID  frame.FrameID
	pending map[frame.FrameID]pendingFrame
}

type pendingFrame struct {
	handle js.Value
	fn     js.Func
}

// NewScheduler creates a Scheduler on the global window.
func NewScheduler() *Scheduler {
	return &Scheduler{
		window:  js.Global().Get("window"),
		pending: make(map[frame.FrameID]pendingFrame),
	}
}

// RequestFrame implements frame.Scheduler.
func (s *Scheduler) RequestFrame(fn frame.FrameFunc) frame.FrameID {
	s.nextID++
	id := s.nextID
	cb := js.FuncOf(func(js.Value, []js.Value) any {
		if p, ok := s.pending[id]; ok {
			delete(s.pending, id)
			p.fn.Release()
			fn(time.Now())
		}
		return nil
	})
	handle := s.window.Call("requestAnimationFrame", cb)
	s.pending[id] = pendingFrame{handle: handle, fn: cb}
	return id
}

// CancelFrame implements frame.Scheduler.
func (s *Scheduler) CancelFrame(id frame.FrameID) {
	p, ok := s.pending[id]
	if !ok {
		return
	}
	delete(s.pending, id)
	s.window.Call("cancelAnimationFrame", p.handle)
	p.fn.Release()
}

// AfterFunc implements frame.Scheduler.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) frame.Timer {
	t := &timer{window: s.window}
	t.fn = js.FuncOf(func(js.Value, []js.Value) any {
		if t.done {
			return nil
		}
		t.done = true
		t.fn.Release()
		fn()
		return nil
	})
	t.handle = s.window.Call("setTimeout", t.fn, d.Milliseconds())
	return t
}

type timer struct {
	window js.Value
	handle js.Value
	fn     js.Func
	done   bool
}

// Stop implements frame.Timer.
func (t *timer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.window.Call("clearTimeout", t.handle)
	t.fn.Release()
	return true
}
