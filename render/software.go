// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"math"
	"sort"

	"github.com/gogpu/gg"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/carousel/scene"
	"github.com/gogpu/carousel/shader"
)

// edgeSegments is how many straight segments approximate each side of a
// displaced quad's outline.
const edgeSegments = 8

// unprojectSteps is the number of fixed-point refinements used to undo the
// vertex displacement when mapping a pixel back onto its quad.
const unprojectSteps = 2

// SoftwareRenderer is a CPU-based renderer built on gg.
//
// Meshes are drawn back to front by world depth; meshes at equal depth keep
// scene-tree order. The outline of each quad, displaced by its program's
// vertex stage, is filled with a gg.CustomBrush that maps every covered
// pixel back to quad uv and runs the fragment stage there.
type SoftwareRenderer struct {
	dc            *gg.Context
	pixmap        *gg.Pixmap
	width, height int
}

// NewSoftwareRenderer creates a new software renderer.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{}
}

type drawItem struct {
	mesh  *scene.Mesh
	world scene.Transform
}

// Render draws the frame to the target.
func (r *SoftwareRenderer) Render(target RenderTarget, frame *Frame) error {
	if frame == nil || frame.Camera == nil {
		return ErrNoCamera
	}
	if target.Format() != gputypes.TextureFormatRGBA8Unorm {
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, target.Format())
	}
	pix := target.Pixels()
	if pix == nil {
		return ErrNoPixels
	}
	w, h := target.Width(), target.Height()
	if w <= 0 || h <= 0 {
		return nil
	}

	r.ensureContext(w, h)
	r.pixmap.Clear(frame.Background)

	var items []drawItem
	if frame.Root != nil {
		frame.Root.Walk(func(n *scene.Node) {
			if n.Mesh != nil && n.Mesh.Program != nil {
				items = append(items, drawItem{mesh: n.Mesh, world: n.World()})
			}
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].world.Z < items[j].world.Z
	})

	proj := newProjection(frame.Camera, w, h)
	for _, it := range items {
		if err := r.drawMesh(proj, it); err != nil {
			return err
		}
	}
	_ = r.dc.FlushGPU()

	return copyRows(pix, target.Stride(), r.pixmap.Data(), w, h)
}

// Flush is a no-op; rendering is synchronous.
func (r *SoftwareRenderer) Flush() error {
	return nil
}

func (r *SoftwareRenderer) ensureContext(w, h int) {
	if r.dc != nil && r.width == w && r.height == h {
		return
	}
	if r.dc != nil {
		_ = r.dc.Close()
	}
	r.pixmap = gg.NewPixmap(w, h)
	r.dc = gg.NewContext(w, h, gg.WithPixmap(r.pixmap))
	r.width, r.height = w, h
}

// projection maps world space to screen pixels for one camera and target.
type projection struct {
	cam    *scene.Camera
	ppu    float64 // pixels per world unit at z = 0
	cx, cy float64
	w, h   float64
}

func newProjection(cam *scene.Camera, w, h int) projection {
	_, vh := cam.Viewport()
	return projection{
		cam: cam,
		ppu: float64(h) / vh,
		cx:  float64(w) / 2,
		cy:  float64(h) / 2,
		w:   float64(w),
		h:   float64(h),
	}
}

// toScreen projects the local quad point (lx, ly) of a mesh.
func (p projection) toScreen(world scene.Transform, prog shader.Program, lx, ly float64) (sx, sy float64, ok bool) {
	f := p.cam.Perspective(world.Z + prog.Displace(lx, ly))
	if f == 0 {
		return 0, 0, false
	}
	wx, wy := world.Apply(lx, ly)
	return p.cx + wx*f*p.ppu, p.cy - wy*f*p.ppu, true
}

// toLocal maps a screen pixel back to local quad coordinates.
func (p projection) toLocal(world scene.Transform, inv gg.Matrix, prog shader.Program, sx, sy float64) (lx, ly float64, ok bool) {
	qx := (sx - p.cx) / p.ppu
	qy := (p.cy - sy) / p.ppu

	z := world.Z
	for i := 0; i <= unprojectSteps; i++ {
		f := p.cam.Perspective(z)
		if f == 0 {
			return 0, 0, false
		}
		pt := inv.TransformPoint(gg.Point{X: qx / f, Y: qy / f})
		lx, ly = pt.X, pt.Y
		z = world.Z + prog.Displace(lx, ly)
	}
	return lx, ly, true
}

func (r *SoftwareRenderer) drawMesh(p projection, it drawItem) error {
	m := it.world.Matrix
	if math.Abs(m.A*m.E-m.B*m.D) < 1e-12 {
		return nil
	}
	prog := it.mesh.Program

	outline, ok := quadOutline(p, it.world, prog)
	if !ok || !onScreen(outline, p.w, p.h) {
		return nil
	}

	inv := m.Invert()
	brush := gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		lx, ly, ok := p.toLocal(it.world, inv, prog, x, y)
		if !ok || lx < -0.5 || lx > 0.5 || ly < -0.5 || ly > 0.5 {
			return gg.Transparent
		}
		c, keep := prog.Shade(lx+0.5, ly+0.5)
		if !keep {
			return gg.Transparent
		}
		return c
	}).WithName(prog.Name())

	r.dc.ClearPath()
	r.dc.MoveTo(outline[0].X, outline[0].Y)
	for _, pt := range outline[1:] {
		r.dc.LineTo(pt.X, pt.Y)
	}
	r.dc.ClosePath()
	r.dc.SetFillBrush(brush)
	if err := r.dc.Fill(); err != nil {
		return fmt.Errorf("render: fill %s: %w", prog.Name(), err)
	}
	return nil
}

// quadOutline walks the unit quad's edges counter-clockwise in local space
// and projects them to the screen.
func quadOutline(p projection, world scene.Transform, prog shader.Program) ([]gg.Point, bool) {
	corners := [4][2]float64{{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5}}
	out := make([]gg.Point, 0, 4*edgeSegments)
	for c := range corners {
		a, b := corners[c], corners[(c+1)%4]
		for s := range edgeSegments {
			t := float64(s) / edgeSegments
			lx := a[0] + (b[0]-a[0])*t
			ly := a[1] + (b[1]-a[1])*t
			sx, sy, ok := p.toScreen(world, prog, lx, ly)
			if !ok {
				return nil, false
			}
			out = append(out, gg.Point{X: sx, Y: sy})
		}
	}
	return out, true
}

func onScreen(pts []gg.Point, w, h float64) bool {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pt := range pts {
		minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
		minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
	}
	return maxX >= 0 && maxY >= 0 && minX <= w && minY <= h
}

// copyRows copies a tightly packed RGBA buffer into a strided one.
func copyRows(dst []byte, stride int, src []byte, w, h int) error {
	row := w * 4
	if stride < row || len(dst) < stride*(h-1)+row || len(src) < row*h {
		return fmt.Errorf("render: target buffer too small for %dx%d", w, h)
	}
	for y := range h {
		copy(dst[y*stride:y*stride+row], src[y*row:(y+1)*row])
	}
	return nil
}

// Ensure SoftwareRenderer implements Renderer.
var _ Renderer = (*SoftwareRenderer)(nil)
