package carousel

import "math"

// Direction is the way the track moved during a frame.
type Direction int8

// Directions. A frame without movement counts as DirectionLeft.
const (
	DirectionLeft  Direction = -1
	DirectionRight Direction = 1
)

// String returns "left" or "right".
func (d Direction) String() string {
	if d == DirectionRight {
		return "right"
	}
	return "left"
}

// ScrollState is the shared scroll position of a track.
//
// Current is the rendered position and chases Target by Ease every frame.
// Last is Current as of the previous frame.
type ScrollState struct {
	Current float64
	Target  float64
	Last    float64
	Ease    float64
}

// lerp moves a towards b by fraction t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Advance eases Current towards Target and returns the direction of travel
// relative to Last.
func (s *ScrollState) Advance() Direction {
	s.Current = lerp(s.Current, s.Target, s.Ease)
	if s.Current > s.Last {
		return DirectionRight
	}
	return DirectionLeft
}

// Speed is the distance travelled since the previous frame.
func (s *ScrollState) Speed() float64 {
	return s.Current - s.Last
}

// Commit records Current as the previous frame's position.
func (s *ScrollState) Commit() {
	s.Last = s.Current
}

// Snap returns target moved to the nearest multiple of width, keeping its
// sign. A non-positive width leaves target unchanged.
func Snap(target, width float64) float64 {
	if width <= 0 {
		return target
	}
	item := width * math.Round(math.Abs(target)/width)
	if target < 0 {
		return -item
	}
	return item
}

// SelectedIndex returns the logical item under target for a track of
// logical items of the given width, normalized into [0, logical).
func SelectedIndex(target, width float64, logical int) int {
	if width <= 0 || logical <= 0 {
		return 0
	}
	// Half-up rounding, matching the browser's Math.round for negatives.
	i := int(math.Floor(target/width+0.5)) % logical
	if i < 0 {
		i += logical
	}
	return i
}
