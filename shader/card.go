package shader

import (
	"image"

	"github.com/gogpu/gg"
)

// CardAlphaCutoff is the alpha below which card fragments are discarded.
const CardAlphaCutoff = 0.1

// CardProgram draws card artwork flat, discarding nearly transparent texels.
type CardProgram struct {
	Texture *image.RGBA
}

// NewCardProgram creates a card program showing tex.
func NewCardProgram(tex *image.RGBA) *CardProgram {
	return &CardProgram{Texture: tex}
}

// Name implements Program.
func (p *CardProgram) Name() string { return "card" }

// Source implements Program.
func (p *CardProgram) Source() string { return cardShaderSource }

// Displace implements Program. Cards are flat.
func (p *CardProgram) Displace(x, y float64) float64 { return 0 }

// Shade implements Program.
func (p *CardProgram) Shade(u, v float64) (gg.RGBA, bool) {
	c := Sample(p.Texture, u, v)
	if c.A < CardAlphaCutoff {
		return gg.Transparent, false
	}
	return c, true
}
