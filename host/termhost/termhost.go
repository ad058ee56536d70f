// Package termhost shows a carousel in a terminal through tcell.
//
// Each character cell holds two vertically stacked pixels drawn with the
// upper half block, so a terminal of c×r cells is a c×2r pixel client box.
// Mouse presses, drags and wheel steps become pointer and wheel events.
package termhost

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/gogpu/carousel/host"
	"github.com/gogpu/carousel/render"
)

// upperHalf is drawn with the top pixel as foreground and the bottom pixel
// as background.
const upperHalf = '▀'

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the host's logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Host) {
		h.logger = l
	}
}

// WithCaption reserves the bottom row for a line of text, read from fn
// after every frame.
func WithCaption(fn func() string) Option {
	return func(h *Host) {
		h.caption = fn
	}
}

// Host is a host.Host on a tcell screen. The screen must already be
// initialized; the caller keeps ownership of it and calls Fini.
type Host struct {
	host.Dispatcher

	screen  tcell.Screen
	logger  *slog.Logger
	caption func() string
	mounted render.RenderTarget

	// pressed tracks the primary button between mouse events.
	pressed bool
}

// New creates a host on screen and turns on mouse reporting.
func New(screen tcell.Screen, opts ...Option) *Host {
	h := &Host{screen: screen}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = slog.New(slog.DiscardHandler)
	}
	screen.EnableMouse()
	return h
}

// ClientSize implements host.Host.
func (h *Host) ClientSize() (width, height int) {
	cols, rows := h.pixelRows()
	return cols, 2 * rows
}

// pixelRows returns the cell grid left for pixels.
func (h *Host) pixelRows() (cols, rows int) {
	cols, rows = h.screen.Size()
	if h.caption != nil && rows > 0 {
		rows--
	}
	return cols, rows
}

// Mount implements host.Host.
func (h *Host) Mount(target render.RenderTarget) {
	h.mounted = target
	h.screen.Clear()
}

// Unmount implements host.Host.
func (h *Host) Unmount(target render.RenderTarget) {
	if h.mounted != target {
		return
	}
	h.mounted = nil
	h.screen.Clear()
	h.screen.Show()
}

// Present implements host.Host. Pixels are taken as premultiplied, which
// composites them over black.
func (h *Host) Present(target render.RenderTarget) {
	pix := target.Pixels()
	if pix == nil {
		return
	}
	w, ht, stride := target.Width(), target.Height(), target.Stride()
	cols, rows := h.pixelRows()

	at := func(x, y int) tcell.Color {
		if y >= ht {
			return tcell.ColorBlack
		}
		i := y*stride + x*4
		return tcell.NewRGBColor(int32(pix[i]), int32(pix[i+1]), int32(pix[i+2]))
	}
	for row := 0; row < rows && 2*row < ht; row++ {
		for x := 0; x < cols && x < w; x++ {
			style := tcell.StyleDefault.
				Foreground(at(x, 2*row)).
				Background(at(x, 2*row+1))
			h.screen.SetContent(x, row, upperHalf, nil, style)
		}
	}
	if h.caption != nil {
		h.drawCaption(h.caption(), rows, cols)
	}
	h.screen.Show()
}

func (h *Host) drawCaption(s string, row, cols int) {
	s = runewidth.Truncate(s, cols, "…")
	x := 0
	for _, r := range s {
		h.screen.SetContent(x, row, r, nil, tcell.StyleDefault)
		x += runewidth.RuneWidth(r)
	}
	for ; x < cols; x++ {
		h.screen.SetContent(x, row, ' ', nil, tcell.StyleDefault)
	}
}

// HandleEvent translates a tcell event and delivers it to the attached
// handlers. It reports whether the event was one the host understands.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
		h.Emit(host.Event{Kind: host.Resize})
		return true
	case *tcell.EventMouse:
		h.handleMouse(ev)
		return true
	}
	return false
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	x := float64(col) + 0.5
	y := float64(2*row) + 1
	buttons := ev.Buttons()

	switch {
	case buttons&(tcell.WheelUp|tcell.WheelLeft) != 0:
		h.Emit(host.Event{Kind: host.Wheel, X: x, Y: y, DeltaY: -1})
		return
	case buttons&(tcell.WheelDown|tcell.WheelRight) != 0:
		h.Emit(host.Event{Kind: host.Wheel, X: x, Y: y, DeltaY: 1})
		return
	}

	down := buttons&tcell.Button1 != 0
	switch {
	case down && !h.pressed:
		h.pressed = true
		h.Emit(host.Event{Kind: host.PointerDown, X: x, Y: y})
	case !down && h.pressed:
		h.pressed = false
		h.Emit(host.Event{Kind: host.PointerUp, X: x, Y: y})
	default:
		h.Emit(host.Event{Kind: host.PointerMove, X: x, Y: y})
	}
}

// Pump reads screen events until ctx is done, the screen is finalized or
// the user presses Esc, Ctrl-C or q.
func (h *Host) Pump(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-ctx.Done()
		_ = h.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()
	for {
		ev := h.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return
		}
		if key, ok := ev.(*tcell.EventKey); ok && isQuit(key) {
			h.logger.Debug("termhost: quit key", "key", key.Name())
			return
		}
		h.HandleEvent(ev)
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEsc, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
