package frame

import "time"

// Debouncer runs a function once activity has been quiet for a delay. Each
// Trigger cancels the previous pending run and starts the delay over.
//
// A Debouncer is not safe for concurrent use; call it from scheduler
// callbacks.
type Debouncer struct {
	sched   Scheduler
	delay   time.Duration
	timer   Timer
	pending bool
}

// NewDebouncer creates a Debouncer on sched.
func NewDebouncer(sched Scheduler, delay time.Duration) *Debouncer {
	return &Debouncer{sched: sched, delay: delay}
}

// Trigger schedules fn to run after the delay, replacing any pending run.
func (d *Debouncer) Trigger(fn func()) {
	d.Stop()
	d.pending = true
	var t Timer
	t = d.sched.AfterFunc(d.delay, func() {
		if d.timer != t {
			return
		}
		d.pending = false
		d.timer = nil
		fn()
	})
	d.timer = t
}

// Stop cancels the pending run. It reports whether one was cancelled.
func (d *Debouncer) Stop() bool {
	if d.timer == nil {
		return false
	}
	stopped := d.timer.Stop()
	d.timer = nil
	d.pending = false
	return stopped
}

// Pending reports whether a run is scheduled.
func (d *Debouncer) Pending() bool {
	return d.pending
}
