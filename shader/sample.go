package shader

import (
	"image"
	"math"

	"github.com/gogpu/gg"
)

// Sample reads img at uv with bilinear filtering and clamp-to-edge
// addressing. uv follows the GL convention (v = 0 is the bottom row of the
// image as displayed). A nil or empty image samples as transparent black.
func Sample(img *image.RGBA, u, v float64) gg.RGBA {
	if img == nil {
		return gg.Transparent
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return gg.Transparent
	}

	// Texel centres sit at half-integer coordinates.
	fx := u*float64(w) - 0.5
	fy := (1-v)*float64(h) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	c00 := texel(img, x0, y0)
	c10 := texel(img, x0+1, y0)
	c01 := texel(img, x0, y0+1)
	c11 := texel(img, x0+1, y0+1)

	top := lerpRGBA(c00, c10, tx)
	bottom := lerpRGBA(c01, c11, tx)
	return unpremultiply(lerpRGBA(top, bottom, ty))
}

// texel returns the premultiplied colour of the clamped pixel (x, y).
func texel(img *image.RGBA, x, y int) gg.RGBA {
	b := img.Bounds()
	x = clampInt(x, 0, b.Dx()-1) + b.Min.X
	y = clampInt(y, 0, b.Dy()-1) + b.Min.Y
	i := img.PixOffset(x, y)
	p := img.Pix[i : i+4 : i+4]
	return gg.RGBA{
		R: float64(p[0]) / 255,
		G: float64(p[1]) / 255,
		B: float64(p[2]) / 255,
		A: float64(p[3]) / 255,
	}
}

func lerpRGBA(a, b gg.RGBA, t float64) gg.RGBA {
	return gg.RGBA{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

func unpremultiply(c gg.RGBA) gg.RGBA {
	if c.A <= 0 {
		return gg.Transparent
	}
	if c.A >= 1 {
		return c
	}
	return gg.RGBA{R: c.R / c.A, G: c.G / c.A, B: c.B / c.A, A: c.A}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func smoothstep(edge0, edge1, x float64) float64 {
	t := (x - edge0) / (edge1 - edge0)
	t = math.Max(0, math.Min(1, t))
	return t * t * (3 - 2*t)
}
