package texture

import "image"

// Default card raster size in pixels (portrait 3:4).
const (
	DefaultWidth  = 600
	DefaultHeight = 800
)

// Texture is a synthesized card raster. The zero value is the empty texture.
type Texture struct {
	Image *image.RGBA
}

// Width returns the raster width in pixels, 0 for the empty texture.
func (t Texture) Width() int {
	if t.Image == nil {
		return 0
	}
	return t.Image.Bounds().Dx()
}

// Height returns the raster height in pixels, 0 for the empty texture.
func (t Texture) Height() int {
	if t.Image == nil {
		return 0
	}
	return t.Image.Bounds().Dy()
}

// Empty reports whether the texture has no pixels.
func (t Texture) Empty() bool {
	return t.Width() == 0 || t.Height() == 0
}
