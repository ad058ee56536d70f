package carousel

import (
	"context"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gogpu/carousel/asset"
	"github.com/gogpu/carousel/frame"
	"github.com/gogpu/carousel/host"
	"github.com/gogpu/carousel/item"
	"github.com/gogpu/carousel/render"
	"github.com/gogpu/carousel/scene"
	"github.com/gogpu/carousel/shader"
	"github.com/gogpu/carousel/texture"
)

// Gesture tuning.
const (
	// dragFactor converts dragged pixels into track units per unit of
	// scroll speed.
	dragFactor = 0.025

	// wheelFactor is the track distance of one wheel step per unit of
	// scroll speed.
	wheelFactor = 0.2

	// clickThreshold is the horizontal travel, in pixels, below which a
	// press and release count as a click.
	clickThreshold = 5

	// snapDelay is the quiet period after the last gesture before the
	// track settles on a card.
	snapDelay = 200 * time.Millisecond
)

// Carousel is a kinetic, infinitely wrapping track of cards attached to a
// host.
//
// All methods must be called on the scheduler's thread.
type Carousel struct {
	opts     options
	host     host.Host
	sched    frame.Scheduler
	logger   *slog.Logger
	renderer render.Renderer

	target *render.PixmapTarget
	camera *scene.Camera
	root   *scene.Node
	cache  *texture.Cache

	viewport Viewport
	scroll   ScrollState
	items    []item.Item
	tracks   []*TrackItem

	// Gesture state.
	isDown     bool
	start      float64
	clickStart float64
	position   float64
	snap       *frame.Debouncer

	frameID   frame.FrameID
	frames    uint64
	detach    func()
	stopLoads context.CancelFunc
	loads     sync.WaitGroup
	destroyed bool
}

// New builds a carousel on h, mounts its drawing surface and starts its
// frame loop on sched. It must be called on the scheduler's thread or before
// the scheduler starts running.
func New(h host.Host, sched frame.Scheduler, opts ...Option) (*Carousel, error) {
	if h == nil {
		return nil, ErrNilHost
	}
	if sched == nil {
		return nil, ErrNilScheduler
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	logger := Logger()
	if o.scrollEase <= 0 || o.scrollEase > 1 {
		logger.Warn("carousel: scroll ease out of range, using default",
			"ease", o.scrollEase, "default", DefaultScrollEase)
		o.scrollEase = DefaultScrollEase
	}
	if !o.loaderSet {
		o.loader = asset.NewSource(asset.WithLogger(logger))
	}
	if o.renderer == nil {
		o.renderer = render.NewSoftwareRenderer()
	}
	if o.observer == nil {
		o.observer = nopObserver{}
	}
	if o.phase == nil {
		o.phase = func() float64 { return 100 * rand.Float64() }
	}

	c := &Carousel{
		opts:     o,
		host:     h,
		sched:    sched,
		logger:   logger,
		renderer: o.renderer,
		camera:   scene.NewCamera(),
		root:     scene.NewNode(),
		scroll:   ScrollState{Ease: o.scrollEase},
		snap:     frame.NewDebouncer(sched, snapDelay),
	}

	w, ht := h.ClientSize()
	c.target = render.NewPixmapTarget(max(w, 1), max(ht, 1))
	h.Mount(c.target)
	c.viewport = ViewportFor(c.camera, w, ht)

	c.createTracks()
	c.compileShaders()
	c.loadPhotos()

	c.frameID = sched.RequestFrame(c.update)
	c.detach = h.Listen(c.dispatch)

	c.logger.Info("carousel: attached",
		"items", len(c.items)/2, "width", w, "height", ht, "bend", o.bend)
	return c, nil
}

func (c *Carousel) createTracks() {
	items := c.opts.items
	if len(items) == 0 {
		c.logger.Debug("carousel: no items, using placeholders")
		items = item.Placeholders()
	}
	c.items = append(append(make([]item.Item, 0, 2*len(items)), items...), items...)

	style := texture.DefaultStyle()
	style.TitleColor = c.opts.textColor
	style.TitleFont = texture.ParseFontSpec(c.opts.font)
	style.Locale = c.opts.locale
	synth := texture.NewSynthesizerSize(c.opts.textureWidth, c.opts.textureHeight, style, c.logger)
	c.cache = texture.NewCache(synth)

	c.tracks = make([]*TrackItem, len(c.items))
	for i, it := range c.items {
		c.tracks[i] = NewTrackItem(c.root, it, i, len(c.items), c.viewport, TrackConfig{
			Bend:         c.opts.bend,
			BorderRadius: c.opts.borderRadius,
			Phase:        c.opts.phase(),
			Cache:        c.cache,
		})
	}
}

// compileProgram is swapped in tests.
var compileProgram = shader.Compile

// compileShaders translates both programs to SPIR-V once per process so GPU
// hosts find them ready. The software path does not need the result, so a
// failure is only logged.
func (c *Carousel) compileShaders() {
	for _, p := range []shader.Program{shader.NewPlaneProgram(0, 0), shader.NewCardProgram(nil)} {
		words, err := compileProgram(p)
		if err != nil {
			c.logger.Warn("carousel: shader compile failed", "program", p.Name(), "err", err)
			continue
		}
		c.logger.Debug("carousel: shader compiled", "program", p.Name(), "words", len(words))
	}
}

// loadPhotos fetches background photos in the background. Failures leave
// the plane without a photo and are not retried.
func (c *Carousel) loadPhotos() {
	ctx, cancel := context.WithCancel(context.Background())
	c.stopLoads = cancel
	if c.opts.loader == nil {
		return
	}
	for _, t := range c.tracks {
		if t.Item.ImageURL == "" {
			continue
		}
		c.loads.Add(1)
		go func(t *TrackItem) {
			defer c.loads.Done()
			img, err := c.opts.loader.Load(ctx, t.Item.ImageURL)
			if ctx.Err() != nil {
				return
			}
			c.opts.observer.PhotoLoaded(err)
			if err != nil {
				c.logger.Warn("carousel: photo unavailable",
					"item", t.Item.ID, "url", t.Item.ImageURL, "err", err)
				return
			}
			t.Program().SetImage(img)
		}(t)
	}
}

// WaitPhotos blocks until every photo load has finished or failed.
// It may be called from any goroutine.
func (c *Carousel) WaitPhotos() {
	c.loads.Wait()
}

// dispatch routes host input onto the scheduler's thread.
func (c *Carousel) dispatch(ev host.Event) {
	if p, ok := c.sched.(frame.Poster); ok {
		p.Post(func() { c.handle(ev) })
		return
	}
	c.handle(ev)
}

func (c *Carousel) handle(ev host.Event) {
	if c.destroyed {
		return
	}
	switch ev.Kind {
	case host.PointerDown:
		c.onDown(ev.X)
	case host.PointerMove:
		c.onMove(ev.X)
	case host.PointerUp:
		c.onUp(ev.X)
	case host.Wheel:
		c.onWheel(ev.DeltaY)
	case host.Resize:
		c.Resize()
	}
}

func (c *Carousel) onDown(x float64) {
	c.isDown = true
	c.position = c.scroll.Current
	c.start = x
	c.clickStart = x
}

func (c *Carousel) onMove(x float64) {
	if !c.isDown {
		return
	}
	distance := (c.start - x) * (c.opts.scrollSpeed * dragFactor)
	c.scroll.Target = c.position + distance
}

func (c *Carousel) onUp(x float64) {
	if !c.isDown {
		return
	}
	c.isDown = false
	c.snap.Trigger(c.onCheck)

	if math.Abs(c.clickStart-x) < clickThreshold {
		c.selectCurrent()
	}
}

func (c *Carousel) onWheel(delta float64) {
	if delta == 0 {
		return
	}
	step := c.opts.scrollSpeed * wheelFactor
	if delta < 0 {
		step = -step
	}
	c.scroll.Target += step
	c.snap.Trigger(c.onCheck)
}

// onCheck settles the target on the nearest card boundary.
func (c *Carousel) onCheck() {
	if c.destroyed || len(c.tracks) == 0 {
		return
	}
	c.scroll.Target = Snap(c.scroll.Target, c.tracks[0].Width)
}

func (c *Carousel) selectCurrent() {
	if c.opts.onSelect == nil || len(c.tracks) == 0 {
		return
	}
	w := c.tracks[0].Width
	idx := SelectedIndex(Snap(c.scroll.Target, w), w, len(c.items)/2)
	c.logger.Debug("carousel: selected", "index", idx, "target", c.scroll.Target)
	c.opts.onSelect(idx)
}

// update is the frame callback.
func (c *Carousel) update(time.Time) {
	c.frameID = 0
	if c.destroyed {
		return
	}

	dir := c.scroll.Advance()
	for _, t := range c.tracks {
		t.Update(&c.scroll, dir)
	}

	start := time.Now()
	err := c.renderer.Render(c.target, &render.Frame{
		Root:       c.root,
		Camera:     c.camera,
		Background: c.opts.background,
	})
	c.opts.observer.FrameRendered(time.Since(start), err)
	if err != nil {
		c.logger.Warn("carousel: render failed", "frame", c.frames, "err", err)
	} else {
		c.host.Present(c.target)
	}
	c.frames++

	c.scroll.Commit()
	c.frameID = c.sched.RequestFrame(c.update)
}

// Resize re-reads the host's client box and resizes the surface, the camera
// and every track item.
func (c *Carousel) Resize() {
	if c.destroyed {
		return
	}
	w, h := c.host.ClientSize()
	c.target.Resize(max(w, 1), max(h, 1))
	c.viewport = ViewportFor(c.camera, w, h)
	for _, t := range c.tracks {
		t.Resize(c.viewport)
	}
	c.logger.Info("carousel: resized", "width", w, "height", h)
}

// Destroy stops the frame loop and the snap timer, detaches input, unmounts
// the surface and abandons photo loads. Calling it again has no effect.
func (c *Carousel) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true

	if c.frameID != 0 {
		c.sched.CancelFrame(c.frameID)
		c.frameID = 0
	}
	c.snap.Stop()
	if c.detach != nil {
		c.detach()
		c.detach = nil
	}
	c.host.Unmount(c.target)
	c.stopLoads()
	for _, t := range c.tracks {
		t.Node.Detach()
	}
	_ = c.renderer.Flush()

	c.logger.Info("carousel: destroyed", "frames", c.frames)
}

// Scroll returns the current scroll state.
func (c *Carousel) Scroll() ScrollState {
	return c.scroll
}

// Tracks returns the track items, both laps. The slice must not be modified.
func (c *Carousel) Tracks() []*TrackItem {
	return c.tracks
}

// Items returns the logical items shown, after placeholder fallback.
func (c *Carousel) Items() []item.Item {
	return c.items[:len(c.items)/2]
}

// Viewport returns the current viewport.
func (c *Carousel) Viewport() Viewport {
	return c.viewport
}

// Frames returns how many frames have run.
func (c *Carousel) Frames() uint64 {
	return c.frames
}

// Target returns the surface the carousel draws into.
func (c *Carousel) Target() *render.PixmapTarget {
	return c.target
}

// Textures returns the number of distinct card textures synthesized.
func (c *Carousel) Textures() int {
	return c.cache.Len()
}
