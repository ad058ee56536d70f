package shader

import "github.com/gogpu/gg"

// Program is a vertex + fragment stage pair.
type Program interface {
	// Name identifies the program in logs and the compile cache.
	Name() string

	// Source returns the WGSL source of the program.
	Source() string

	// Displace returns the vertex stage's depth offset for the local plane
	// position (x, y), both in [-0.5, 0.5].
	Displace(x, y float64) float64

	// Shade runs the fragment stage at uv. It returns false when the
	// fragment is discarded. The colour is not premultiplied.
	Shade(u, v float64) (gg.RGBA, bool)
}
