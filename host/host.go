// Package host defines the boundary between a carousel and the environment
// that displays it.
//
// A Host owns the pixel box the carousel draws into, delivers its input, and
// shows the frames the carousel renders. Implementations live in the
// sub-packages: headless (in-memory, scriptable), termhost (a terminal
// through tcell) and jshost (a browser canvas).
package host

import "github.com/gogpu/carousel/render"

// EventKind classifies an input Event.
type EventKind uint8

// Event kinds.
const (
	// PointerDown starts a press. Touch start maps here with Touch set.
	PointerDown EventKind = iota + 1
	// PointerMove reports motion, pressed or not.
	PointerMove
	// PointerUp ends a press. Touch end maps here with Touch set.
	PointerUp
	// Wheel reports a scroll step in DeltaY.
	Wheel
	// Resize reports that the client box changed; read ClientSize for the
	// new size.
	Resize
)

// String returns the kind's name.
func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "pointer-down"
	case PointerMove:
		return "pointer-move"
	case PointerUp:
		return "pointer-up"
	case Wheel:
		return "wheel"
	case Resize:
		return "resize"
	default:
		return "unknown"
	}
}

// Event is one input event in client pixel coordinates.
type Event struct {
	Kind EventKind
	X, Y float64

	// DeltaY is the wheel delta. Positive scrolls forward.
	DeltaY float64

	// Touch is set for events that came from a touch screen.
	Touch bool
}

// EventHandler receives input events.
type EventHandler func(Event)

// Host is the environment a carousel is attached to.
type Host interface {
	// ClientSize returns the size of the box the carousel fills, in pixels.
	ClientSize() (width, height int)

	// Listen starts delivering input events to h. The returned function
	// stops delivery; after it returns h is never called again.
	Listen(h EventHandler) (detach func())

	// Mount attaches the carousel's drawing surface.
	Mount(target render.RenderTarget)

	// Unmount removes a surface previously passed to Mount.
	Unmount(target render.RenderTarget)

	// Present shows the surface's current contents.
	Present(target render.RenderTarget)
}
