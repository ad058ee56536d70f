package carousel

import "time"

// Observer receives statistics from a running carousel. Methods are called
// from the scheduler's thread, except PhotoLoaded, which runs on the loading
// goroutine.
type Observer interface {
	// FrameRendered reports one frame's render time and outcome.
	FrameRendered(d time.Duration, err error)

	// PhotoLoaded reports the outcome of one background photo load.
	// Loads abandoned by Destroy are not reported.
	PhotoLoaded(err error)
}

type nopObserver struct{}

func (nopObserver) FrameRendered(time.Duration, error) {}
func (nopObserver) PhotoLoaded(error)                  {}
