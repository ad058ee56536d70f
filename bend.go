package carousel

import "math"

// Bend places a card at track position x on a circular arc.
//
// halfWidth is half the visible track width and bend the signed sag of the
// arc at the viewport edges. The arc's radius is chosen so that a card at
// ±halfWidth sits exactly bend below (bend > 0) or above (bend < 0) the
// centre. Cards further out are held at the edge height and angle. A zero
// bend keeps the track flat.
func Bend(x, halfWidth, bend float64) (y, rotation float64) {
	if bend == 0 {
		return 0, 0
	}
	b := math.Abs(bend)
	r := (halfWidth*halfWidth + b*b) / (2 * b)
	cx := math.Min(math.Abs(x), halfWidth)

	arc := r - math.Sqrt(r*r-cx*cx)
	angle := math.Asin(math.Min(cx/r, 1))
	s := sign(x)
	if bend > 0 {
		return -arc, -s * angle
	}
	return arc, s * angle
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
