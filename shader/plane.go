package shader

import (
	"image"
	"math"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// PlaneProgram draws a track plane: a wave-displaced quad showing a darkened
// photo cover-fitted into rounded corners.
//
// Time, Speed, PlaneWidth, PlaneHeight and BorderRadius are uniforms owned by
// the frame loop. The photo may be swapped from any goroutine with SetImage;
// draws pick it up on the next frame.
type PlaneProgram struct {
	Time         float64
	Speed        float64
	PlaneWidth   float64
	PlaneHeight  float64
	BorderRadius float64

	photo atomic.Pointer[image.RGBA]
}

// NewPlaneProgram creates a plane program with the given corner radius in uv
// units.
func NewPlaneProgram(time, borderRadius float64) *PlaneProgram {
	return &PlaneProgram{Time: time, BorderRadius: borderRadius}
}

// Name implements Program.
func (p *PlaneProgram) Name() string { return "plane" }

// Source implements Program.
func (p *PlaneProgram) Source() string { return planeShaderSource }

// SetImage replaces the photo. A nil image clears it.
func (p *PlaneProgram) SetImage(img *image.RGBA) {
	p.photo.Store(img)
}

// Image returns the current photo, or nil before one has loaded.
func (p *PlaneProgram) Image() *image.RGBA {
	return p.photo.Load()
}

// ImageSizes returns the photo's natural size, or (0, 0) before it has loaded.
func (p *PlaneProgram) ImageSizes() (w, h float64) {
	return imageSize(p.photo.Load())
}

func imageSize(img *image.RGBA) (w, h float64) {
	if img == nil {
		return 0, 0
	}
	b := img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Displace implements Program with the travelling wave
// (sin(4x+t) + cos(2y+t)) * 1.5 * (0.1 + speed/2).
func (p *PlaneProgram) Displace(x, y float64) float64 {
	return Wave(x, y, p.Time, p.Speed)
}

// Wave is the plane's vertex displacement at local (x, y).
func Wave(x, y, time, speed float64) float64 {
	return (math.Sin(x*4+time)*1.5 + math.Cos(y*2+time)*1.5) * (0.1 + speed*0.5)
}

// Shade implements Program. Planes never discard; corners fade through alpha.
func (p *PlaneProgram) Shade(u, v float64) (gg.RGBA, bool) {
	alpha := roundedAlpha(u, v, p.BorderRadius)
	if alpha <= 0 {
		return gg.Transparent, true
	}

	c := p.photoColor(p.photo.Load(), u, v)
	c.A = alpha
	return c, true
}

// photoColor returns the darkened cover-fitted colour of img at uv. The crop
// is derived from img itself so a concurrent SetImage cannot mix sizes.
func (p *PlaneProgram) photoColor(img *image.RGBA, u, v float64) gg.RGBA {
	if img == nil {
		return gg.RGBA{}
	}
	iw, ih := imageSize(img)
	rx, ry := coverRatio(p.PlaneWidth, p.PlaneHeight, iw, ih)
	c := Sample(img, u*rx+(1-rx)*0.5, v*ry+(1-ry)*0.5)
	return gg.RGBA{R: c.R * 0.1, G: c.G * 0.1, B: c.B * 0.1}
}

// coverRatio returns the uv scale that crops an image of size (iw, ih) to
// fill a plane of size (pw, ph) without distortion. Degenerate sizes leave uv
// untouched.
func coverRatio(pw, ph, iw, ih float64) (rx, ry float64) {
	if pw <= 0 || ph <= 0 || iw <= 0 || ih <= 0 {
		return 1, 1
	}
	planeAspect := pw / ph
	imageAspect := iw / ih
	return math.Min(planeAspect/imageAspect, 1), math.Min(imageAspect/planeAspect, 1)
}
