package carousel

import "github.com/gogpu/carousel/scene"

// Viewport pairs the host's client box with the world-space area the camera
// sees at the track's depth.
type Viewport struct {
	WidthPx, HeightPx float64
	Width, Height     float64
}

// ViewportFor sizes the camera to a widthPx×heightPx box and returns the
// resulting viewport. Sizes below one pixel are raised to one.
func ViewportFor(cam *scene.Camera, widthPx, heightPx int) Viewport {
	w, h := float64(max(widthPx, 1)), float64(max(heightPx, 1))
	cam.SetAspect(w, h)
	vw, vh := cam.Viewport()
	return Viewport{WidthPx: w, HeightPx: h, Width: vw, Height: vh}
}
