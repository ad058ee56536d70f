package shader

import (
	"image"
	"image/color"
	"math"
	"strings"
	"testing"
)

const eps = 1e-9

func TestShaderSourcesContainExpectedContent(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		required []string
	}{
		{
			name:   "plane",
			source: PlaneSource(),
			required: []string{
				"@vertex", "@fragment", "vs_main", "fs_main",
				"texture_2d<f32>", "textureSample",
				"rounded_box_sdf", "smoothstep", "plane_sizes", "image_sizes",
			},
		},
		{
			name:   "card",
			source: CardSource(),
			required: []string{
				"@vertex", "@fragment", "vs_main", "fs_main",
				"textureSample", "discard",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, req := range tt.required {
				if !strings.Contains(tt.source, req) {
					t.Errorf("%s shader missing %q", tt.name, req)
				}
			}
		})
	}
}

func TestProgramSources(t *testing.T) {
	if got := NewPlaneProgram(0, 0.05).Source(); got != PlaneSource() {
		t.Error("plane program does not carry the plane source")
	}
	if got := NewCardProgram(nil).Source(); got != CardSource() {
		t.Error("card program does not carry the card source")
	}
}

func TestWave(t *testing.T) {
	tests := []struct {
		x, y, time, speed float64
	}{
		{0, 0, 0, 0},
		{0.25, -0.5, 100, 0},
		{-0.5, 0.5, 3.7, 0.8},
	}
	for _, tt := range tests {
		want := (math.Sin(4*tt.x+tt.time)*1.5 + math.Cos(2*tt.y+tt.time)*1.5) * (0.1 + tt.speed*0.5)
		if got := Wave(tt.x, tt.y, tt.time, tt.speed); math.Abs(got-want) > eps {
			t.Errorf("Wave(%v) = %v, want %v", tt, got, want)
		}
	}
	// At rest with t = 0 the origin is lifted by cos(0)*1.5*0.1.
	if got := Wave(0, 0, 0, 0); math.Abs(got-0.15) > eps {
		t.Errorf("Wave at origin = %v, want 0.15", got)
	}
}

func TestRoundedBoxSDF(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   float64
	}{
		{"centre", 0, 0, -0.5},
		{"edge", 0.5, 0, 0},
		{"outside edge", 0.6, 0, 0.1},
		// Corner of the unit square lies outside the rounded corner.
		{"corner", 0.5, 0.5, math.Hypot(0.05, 0.05) - 0.05},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundedBoxSDF(tt.px, tt.py, 0.45, 0.45, 0.05)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("RoundedBoxSDF(%v, %v) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestPlaneShadeAlpha(t *testing.T) {
	p := NewPlaneProgram(0, 0.05)
	p.PlaneWidth, p.PlaneHeight = 7, 9

	c, ok := p.Shade(0.5, 0.5)
	if !ok || math.Abs(c.A-1) > eps {
		t.Errorf("centre = %+v, %v; want opaque", c, ok)
	}
	c, _ = p.Shade(0, 0)
	if c.A != 0 {
		t.Errorf("corner alpha = %v, want 0", c.A)
	}
	// Straight edges stay covered up to the rim.
	c, _ = p.Shade(0.5, 0.99)
	if c.A < 0.99 {
		t.Errorf("top edge alpha = %v, want ~1", c.A)
	}
}

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestPlaneShadeDarkensPhoto(t *testing.T) {
	p := NewPlaneProgram(0, 0.05)
	p.PlaneWidth, p.PlaneHeight = 1, 1

	c, _ := p.Shade(0.5, 0.5)
	if c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("without photo = %+v, want black", c)
	}

	p.SetImage(solid(4, 4, color.RGBA{255, 255, 255, 255}))
	if w, h := p.ImageSizes(); w != 4 || h != 4 {
		t.Errorf("ImageSizes = %v, %v", w, h)
	}
	c, _ = p.Shade(0.5, 0.5)
	if math.Abs(c.R-0.1) > 1e-6 || math.Abs(c.G-0.1) > 1e-6 {
		t.Errorf("white photo shaded to %+v, want rgb 0.1", c)
	}
}

func TestPlanePhotoCropFollowsImage(t *testing.T) {
	p := NewPlaneProgram(0, 0.05)
	p.PlaneWidth, p.PlaneHeight = 1, 1

	wide := image.NewRGBA(image.Rect(0, 0, 4, 1))
	wide.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	wide.SetRGBA(1, 0, color.RGBA{0, 255, 0, 255})
	wide.SetRGBA(2, 0, color.RGBA{0, 255, 0, 255})
	wide.SetRGBA(3, 0, color.RGBA{0, 0, 255, 255})

	// A square photo is current, but the crop for wide must still come from
	// wide's own 4:1 aspect: u = 0 lands on the second column.
	p.SetImage(solid(4, 4, color.RGBA{255, 0, 0, 255}))
	c := p.photoColor(wide, 0, 0.5)
	if math.Abs(c.G-0.1) > 1e-6 || c.R > 1e-6 {
		t.Errorf("left edge = %+v, want the green column darkened", c)
	}
}

func TestCoverRatio(t *testing.T) {
	tests := []struct {
		name           string
		pw, ph, iw, ih float64
		rx, ry         float64
	}{
		{"same aspect", 2, 3, 200, 300, 1, 1},
		{"wide image", 1, 1, 2, 1, 0.5, 1},
		{"tall image", 1, 1, 1, 4, 1, 0.25},
		{"no image", 1, 1, 0, 0, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rx, ry := coverRatio(tt.pw, tt.ph, tt.iw, tt.ih)
			if math.Abs(rx-tt.rx) > eps || math.Abs(ry-tt.ry) > eps {
				t.Errorf("coverRatio = (%v, %v), want (%v, %v)", rx, ry, tt.rx, tt.ry)
			}
		})
	}
}

func TestCardShadeDiscard(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{0, 0, 0, 0})
	img.SetRGBA(1, 0, color.RGBA{200, 10, 10, 255})
	p := NewCardProgram(img)

	if _, ok := p.Shade(0.01, 0.5); ok {
		t.Error("transparent texel was not discarded")
	}
	c, ok := p.Shade(0.99, 0.5)
	if !ok {
		t.Fatal("opaque texel was discarded")
	}
	if math.Abs(c.R-200.0/255) > 1e-6 {
		t.Errorf("R = %v, want %v", c.R, 200.0/255)
	}
	if p.Displace(0.3, 0.3) != 0 {
		t.Error("card displaced")
	}
}

func TestSampleOrientation(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255}) // top row
	img.SetRGBA(0, 1, color.RGBA{0, 0, 255, 255}) // bottom row

	if c := Sample(img, 0.5, 0.9); c.R < 0.99 {
		t.Errorf("v near 1 sampled %+v, want the top row", c)
	}
	if c := Sample(img, 0.5, 0.1); c.B < 0.99 {
		t.Errorf("v near 0 sampled %+v, want the bottom row", c)
	}
	if c := Sample(nil, 0.5, 0.5); c.A != 0 {
		t.Errorf("nil image sampled %+v", c)
	}
}
