// Package texture synthesizes card artwork for carousel items.
//
// A Synthesizer renders one item.Item into a fixed-size raster using
// github.com/gogpu/gg: a dark vertical gradient, a status-coloured border,
// the word-wrapped title and description, and rounded status/priority badges
// with an optional locale-formatted due date.
//
// Synthesis is a pure function of the item and the Synthesizer's style; the
// same input always produces the same pixels. When a raster cannot be
// produced the result is an empty Texture (0×0) rather than an error, and
// callers are expected to draw nothing for it.
//
//	synth := texture.NewSynthesizer(texture.DefaultStyle(), nil)
//	tex := synth.Synthesize(it)
//	if !tex.Empty() {
//	    _ = png.Encode(f, tex.Image)
//	}
package texture
