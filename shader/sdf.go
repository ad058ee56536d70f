package shader

import "math"

// RoundedBoxSDF is the signed distance from p to a box of half-extent (bx, by)
// whose corners are rounded by r. It is negative inside.
func RoundedBoxSDF(px, py, bx, by, r float64) float64 {
	dx := math.Abs(px) - bx
	dy := math.Abs(py) - by
	outside := math.Hypot(math.Max(dx, 0), math.Max(dy, 0))
	inside := math.Min(math.Max(dx, dy), 0)
	return outside + inside - r
}

// sdfEdge is the half-width of the antialiased rim in uv units.
const sdfEdge = 0.002

// roundedAlpha is the coverage of uv inside the rounded unit square.
func roundedAlpha(u, v, radius float64) float64 {
	half := 0.5 - radius
	d := RoundedBoxSDF(u-0.5, v-0.5, half, half, radius)
	return 1 - smoothstep(-sdfEdge, sdfEdge, d)
}
