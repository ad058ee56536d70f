//go:build js && wasm

package jshost

import (
	"syscall/js"

	"github.com/gogpu/carousel/host"
	"github.com/gogpu/carousel/render"
)

// Host is a host.Host backed by a canvas element.
type Host struct {
	host.Dispatcher

	window    js.Value
	container js.Value
	canvas    js.Value
	ctx2d     js.Value

	// buf holds the pixels of the last presented frame on the JS side.
	buf        js.Value
	bufW, bufH int
	scratch    []byte

	listeners []listener
}

type listener struct {
	target js.Value
	name   string
	fn     js.Func
}

// New creates a host drawing into a new canvas inside container.
func New(container js.Value) *Host {
	doc := js.Global().Get("document")
	canvas := doc.Call("createElement", "canvas")
	style := canvas.Get("style")
	style.Set("width", "100%")
	style.Set("height", "100%")
	style.Set("display", "block")

	return &Host{
		window:    js.Global().Get("window"),
		container: container,
		canvas:    canvas,
		ctx2d:     canvas.Call("getContext", "2d"),
	}
}

// ClientSize implements host.Host.
func (h *Host) ClientSize() (width, height int) {
	return h.container.Get("clientWidth").Int(), h.container.Get("clientHeight").Int()
}

// Mount implements host.Host.
func (h *Host) Mount(target render.RenderTarget) {
	h.canvas.Set("width", target.Width())
	h.canvas.Set("height", target.Height())
	h.container.Call("appendChild", h.canvas)
}

// Unmount implements host.Host.
func (h *Host) Unmount(render.RenderTarget) {
	parent := h.canvas.Get("parentNode")
	if parent.Truthy() {
		parent.Call("removeChild", h.canvas)
	}
	h.detachAll()
}

// Present implements host.Host.
func (h *Host) Present(target render.RenderTarget) {
	pix := target.Pixels()
	w, ht, stride := target.Width(), target.Height(), target.Stride()
	if pix == nil || w <= 0 || ht <= 0 {
		return
	}
	if w != h.bufW || ht != h.bufH {
		h.buf = js.Global().Get("Uint8ClampedArray").New(w * ht * 4)
		h.bufW, h.bufH = w, ht
		h.canvas.Set("width", w)
		h.canvas.Set("height", ht)
	}

	src := pix
	if stride != w*4 {
		if cap(h.scratch) < w*ht*4 {
			h.scratch = make([]byte, w*ht*4)
		}
		src = h.scratch[:w*ht*4]
		for y := range ht {
			copy(src[y*w*4:(y+1)*w*4], pix[y*stride:y*stride+w*4])
		}
	}
	js.CopyBytesToJS(h.buf, src[:w*ht*4])

	img := js.Global().Get("ImageData").New(h.buf, w, ht)
	h.ctx2d.Call("putImageData", img, 0, 0)
}

// Listen implements host.Host. The first handler attaches the page
// listeners; they stay until Unmount.
func (h *Host) Listen(fn host.EventHandler) (detach func()) {
	if len(h.listeners) == 0 {
		h.attach()
	}
	return h.Dispatcher.Listen(fn)
}

func (h *Host) attach() {
	pointer := func(kind host.EventKind, touch bool) func(ev js.Value) {
		return func(ev js.Value) {
			x, y := clientPoint(ev, touch)
			h.Emit(host.Event{Kind: kind, X: x, Y: y, Touch: touch})
		}
	}
	h.on(h.window, "mousedown", pointer(host.PointerDown, false))
	h.on(h.window, "mousemove", pointer(host.PointerMove, false))
	h.on(h.window, "mouseup", pointer(host.PointerUp, false))
	h.on(h.window, "touchstart", pointer(host.PointerDown, true))
	h.on(h.window, "touchmove", pointer(host.PointerMove, true))
	h.on(h.window, "touchend", pointer(host.PointerUp, true))
	h.on(h.window, "resize", func(js.Value) {
		h.Emit(host.Event{Kind: host.Resize})
	})
	wheel := func(ev js.Value) {
		delta := ev.Get("deltaY")
		if delta.IsUndefined() {
			// Legacy mousewheel reports the opposite sign.
			delta = ev.Get("wheelDelta")
			h.Emit(host.Event{Kind: host.Wheel, DeltaY: -delta.Float()})
			return
		}
		h.Emit(host.Event{Kind: host.Wheel, DeltaY: delta.Float()})
	}
	h.on(h.container, "wheel", wheel)
	h.on(h.container, "mousewheel", wheel)
}

func (h *Host) on(target js.Value, name string, handle func(ev js.Value)) {
	fn := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			handle(args[0])
		}
		return nil
	})
	target.Call("addEventListener", name, fn)
	h.listeners = append(h.listeners, listener{target: target, name: name, fn: fn})
}

func (h *Host) detachAll() {
	for _, l := range h.listeners {
		l.target.Call("removeEventListener", l.name, l.fn)
		l.fn.Release()
	}
	h.listeners = nil
}

// clientPoint reads the pointer position from a mouse or touch event. Touch
// end carries the lifted finger in changedTouches.
func clientPoint(ev js.Value, touch bool) (x, y float64) {
	if !touch {
		return ev.Get("clientX").Float(), ev.Get("clientY").Float()
	}
	list := ev.Get("touches")
	if list.Get("length").Int() == 0 {
		list = ev.Get("changedTouches")
	}
	if list.Get("length").Int() == 0 {
		return 0, 0
	}
	t := list.Index(0)
	return t.Get("clientX").Float(), t.Get("clientY").Float()
}
