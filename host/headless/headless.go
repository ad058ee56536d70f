// Package headless provides an in-memory host for tests and offline
// rendering. Input is scripted with Emit and its helpers; presented frames
// are copied out and handed to an optional callback.
package headless

import (
	"image"
	"sync"

	"github.com/gogpu/carousel/host"
	"github.com/gogpu/carousel/render"
)

// PresentFunc receives a copy of each presented frame, numbered from 1.
type PresentFunc func(frame int, img *image.RGBA)

// Option configures a Host.
type Option func(*Host)

// WithPresentFunc calls fn for every presented frame.
func WithPresentFunc(fn PresentFunc) Option {
	return func(h *Host) {
		h.onPresent = fn
	}
}

// Host is an in-memory host.Host.
type Host struct {
	host.Dispatcher

	mu            sync.Mutex
	width, height int
	mounted       render.RenderTarget
	frames        int
	last          *image.RGBA
	onPresent     PresentFunc
}

// New creates a host whose client box is width×height pixels.
func New(width, height int, opts ...Option) *Host {
	h := &Host{
		width:  width,
		height: height,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ClientSize implements host.Host.
func (h *Host) ClientSize() (width, height int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.width, h.height
}

// Mount implements host.Host.
func (h *Host) Mount(target render.RenderTarget) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.mounted = target
}

// Unmount implements host.Host.
func (h *Host) Unmount(target render.RenderTarget) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.mounted == target {
		h.mounted = nil
	}
}

// Mounted returns the currently mounted surface, or nil.
func (h *Host) Mounted() render.RenderTarget {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.mounted
}

// Present implements host.Host. It copies the target's pixels.
func (h *Host) Present(target render.RenderTarget) {
	img := copyTarget(target)

	h.mu.Lock()
	h.frames++
	n := h.frames
	h.last = img
	fn := h.onPresent
	h.mu.Unlock()

	if fn != nil && img != nil {
		fn(n, img)
	}
}

// Frames returns how many frames have been presented.
func (h *Host) Frames() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frames
}

// LastFrame returns a copy of the most recently presented frame, or nil.
func (h *Host) LastFrame() *image.RGBA {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last
}

// SetSize changes the client box and emits a Resize event.
func (h *Host) SetSize(width, height int) {
	h.mu.Lock()
	h.width, h.height = width, height
	h.mu.Unlock()
	h.Emit(host.Event{Kind: host.Resize})
}

// Press emits a pointer down at (x, y).
func (h *Host) Press(x, y float64) {
	h.Emit(host.Event{Kind: host.PointerDown, X: x, Y: y})
}

// Move emits a pointer move to (x, y).
func (h *Host) Move(x, y float64) {
	h.Emit(host.Event{Kind: host.PointerMove, X: x, Y: y})
}

// Release emits a pointer up at (x, y).
func (h *Host) Release(x, y float64) {
	h.Emit(host.Event{Kind: host.PointerUp, X: x, Y: y})
}

// Drag emits a press at (x0, y), steps moves towards x1 and a release at x1.
func (h *Host) Drag(x0, x1, y float64, steps int) {
	h.Press(x0, y)
	for i := 1; i <= steps; i++ {
		h.Move(x0+(x1-x0)*float64(i)/float64(steps), y)
	}
	h.Release(x1, y)
}

// Click emits a press and release at the same point.
func (h *Host) Click(x, y float64) {
	h.Press(x, y)
	h.Release(x, y)
}

// Scroll emits a wheel event.
func (h *Host) Scroll(deltaY float64) {
	h.Emit(host.Event{Kind: host.Wheel, DeltaY: deltaY})
}

func copyTarget(t render.RenderTarget) *image.RGBA {
	pix := t.Pixels()
	w, ht := t.Width(), t.Height()
	if pix == nil || w <= 0 || ht <= 0 {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, w, ht))
	row := w * 4
	stride := t.Stride()
	for y := range ht {
		copy(img.Pix[y*img.Stride:y*img.Stride+row], pix[y*stride:y*stride+row])
	}
	return img
}

// Ensure Host implements host.Host.
var _ host.Host = (*Host)(nil)
