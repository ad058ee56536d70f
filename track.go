package carousel

import (
	"math"

	"github.com/gogpu/carousel/item"
	"github.com/gogpu/carousel/scene"
	"github.com/gogpu/carousel/shader"
	"github.com/gogpu/carousel/texture"
)

// Track geometry in reference pixels, measured on a 1500 px tall screen.
const (
	referenceHeight = 1500
	planeWidthPx    = 700
	planeHeightPx   = 900

	// trackPadding is the world-space gap between neighbouring planes.
	trackPadding = 2

	// timeStep advances the wave phase once per frame.
	timeStep = 0.04
)

// TrackConfig holds the settings shared by every slot of a track.
type TrackConfig struct {
	// Bend is the signed arc sag; zero keeps the track flat.
	Bend float64

	// BorderRadius rounds the plane corners, in plane uv units.
	BorderRadius float64

	// Phase is the wave's starting time.
	Phase float64

	// Cache renders card artwork. A nil cache leaves the plane without a
	// card.
	Cache *texture.Cache
}

// TrackItem is one slot of the track: a wave-animated plane carrying a card,
// its place on the track and its wraparound bookkeeping.
type TrackItem struct {
	Index int
	Item  item.Item
	Node  *scene.Node
	Card  *CardSurface

	// Width is the slot pitch: plane width plus padding. WidthTotal is the
	// length of one full lap. X is the slot's offset on the track.
	Width      float64
	WidthTotal float64
	X          float64

	// Extra is the whole number of laps the slot has been moved by.
	Extra float64

	// IsBefore and IsAfter report that the plane is entirely left or right
	// of the viewport.
	IsBefore bool
	IsAfter  bool

	// Speed is the track's movement during the last update.
	Speed float64

	count    int
	bend     float64
	program  *shader.PlaneProgram
	viewport Viewport
	current  float64
}

// NewTrackItem creates slot index of count on parent and sizes it for vp.
func NewTrackItem(parent *scene.Node, it item.Item, index, count int, vp Viewport, cfg TrackConfig) *TrackItem {
	program := shader.NewPlaneProgram(cfg.Phase, cfg.BorderRadius)
	node := scene.NewMeshNode(program)
	node.SetParent(parent)

	t := &TrackItem{
		Index:   index,
		Item:    it,
		Node:    node,
		count:   count,
		bend:    cfg.Bend,
		program: program,
	}
	if cfg.Cache != nil {
		t.Card = NewCardSurface(node, it, cfg.Cache)
	}
	t.Resize(vp)
	return t
}

// Program returns the plane's shader program.
func (t *TrackItem) Program() *shader.PlaneProgram {
	return t.program
}

// Position returns the plane's rendered track position, arc height and
// rotation.
func (t *TrackItem) Position() (x, y, rotation float64) {
	return t.Node.Position.X, t.Node.Position.Y, t.Node.Rotation
}

// Update places the plane for the scroll state and advances its uniforms.
func (t *TrackItem) Update(scroll *ScrollState, dir Direction) {
	t.current = scroll.Current
	x := t.X - scroll.Current - t.Extra

	planeOffset := t.Node.Scale.X / 2
	viewportOffset := t.viewport.Width / 2
	t.IsBefore = x+planeOffset < -viewportOffset
	t.IsAfter = x-planeOffset > viewportOffset

	if t.WidthTotal > 0 {
		lo, hi := t.seams()
		if (dir == DirectionRight && x < lo) || (dir == DirectionLeft && x >= hi) {
			laps := math.Floor((x - lo) / t.WidthTotal)
			t.Extra += laps * t.WidthTotal
			x -= laps * t.WidthTotal
			t.IsBefore, t.IsAfter = false, false
		}
	}

	t.Node.Position.X = x
	t.Node.Position.Y, t.Node.Rotation = Bend(x, t.viewport.Width/2, t.bend)

	t.Speed = scroll.Speed()
	t.program.Time += timeStep
	t.program.Speed = t.Speed
}

// seams returns the track positions at which a slot is moved a lap. They
// bound a window one lap wide, centred half a slot left of the middle so
// slots resting on item boundaries are never on a seam.
func (t *TrackItem) seams() (lo, hi float64) {
	lo = -t.WidthTotal/2 - t.Width/2
	return lo, lo + t.WidthTotal
}

// Resize recomputes the plane size and track geometry for vp.
func (t *TrackItem) Resize(vp Viewport) {
	t.viewport = vp
	scale := vp.HeightPx / referenceHeight
	t.Node.Scale.Y = vp.Height * (planeHeightPx * scale) / vp.HeightPx
	t.Node.Scale.X = vp.Width * (planeWidthPx * scale) / vp.WidthPx
	t.program.PlaneWidth = t.Node.Scale.X
	t.program.PlaneHeight = t.Node.Scale.Y

	t.Width = t.Node.Scale.X + trackPadding
	t.WidthTotal = t.Width * float64(t.count)
	t.X = t.Width * float64(t.Index)
	t.normalize()
}

// normalize picks Extra so that the slot's position lies inside the seam
// window for the last known scroll position.
func (t *TrackItem) normalize() {
	if t.WidthTotal <= 0 {
		return
	}
	lo, _ := t.seams()
	x := t.X - t.current
	wrapped := lo + math.Mod(x-lo, t.WidthTotal)
	if wrapped < lo {
		wrapped += t.WidthTotal
	}
	t.Extra = x - wrapped
}
