// Command carousel-render renders a carousel offscreen and writes frames as
// PNG files. Input is scripted: an optional drag at the start, then wheel
// steps, then the track is left to settle.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/carousel"
	"github.com/gogpu/carousel/config"
	"github.com/gogpu/carousel/frame"
	"github.com/gogpu/carousel/host/headless"
	"github.com/gogpu/carousel/shader"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		frames  = flag.Int("frames", 90, "frames to render")
		every   = flag.Int("every", 15, "save every n-th frame")
		outDir  = flag.String("out", "frames", "output directory")
		cfgPath = flag.String("config", "carousel.toml", "TOML settings and items")
		drag    = flag.Float64("drag", 200, "pixels to drag left at the start")
		wheel   = flag.Int("wheel", 0, "wheel steps after the drag (negative scrolls back)")
		spirv   = flag.Bool("spirv", false, "compile the WGSL programs and report their size")
		verbose = flag.Bool("v", false, "log carousel diagnostics")
	)
	flag.Parse()

	if *verbose {
		carousel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if *spirv {
		reportSPIRV()
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	opts, err := cfg.Options()
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create %s: %v", *outDir, err)
	}

	saved := 0
	h := headless.New(*width, *height, headless.WithPresentFunc(func(n int, img *image.RGBA) {
		if *every <= 0 || n%*every != 0 {
			return
		}
		path := filepath.Join(*outDir, fmt.Sprintf("frame-%04d.png", n))
		if err := gg.FromImage(img).SavePNG(path); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		saved++
	}))

	sched := frame.NewManual(time.Now())
	c, err := carousel.New(h, sched, opts...)
	if err != nil {
		log.Fatalf("Failed to create carousel: %v", err)
	}
	defer c.Destroy()

	// Photos arrive before the first frame so the output is reproducible.
	c.WaitPhotos()

	script := newScript(*width, *height, *drag, *wheel)
	step := time.Second / frame.DefaultFPS
	for i := 0; i < *frames; i++ {
		script.apply(i, h)
		sched.Frame()
		sched.Advance(step)
	}

	log.Printf("Rendered %d frames, saved %d to %s (%dx%d)\n", c.Frames(), saved, *outDir, *width, *height)
}

// script emits the scripted gestures frame by frame.
type script struct {
	x0, y     float64
	drag      float64
	dragSteps int
	wheel     int
}

func newScript(width, height int, drag float64, wheel int) *script {
	return &script{
		x0:        float64(width) / 2,
		y:         float64(height) / 2,
		drag:      drag,
		dragSteps: 10,
		wheel:     wheel,
	}
}

func (s *script) apply(i int, h *headless.Host) {
	if s.drag != 0 {
		switch {
		case i == 0:
			h.Press(s.x0, s.y)
		case i <= s.dragSteps:
			h.Move(s.x0-s.drag*float64(i)/float64(s.dragSteps), s.y)
		case i == s.dragSteps+1:
			h.Release(s.x0-s.drag, s.y)
		}
	}

	start := 0
	if s.drag != 0 {
		start = s.dragSteps + 2
	}
	n := s.wheel
	delta := 1.0
	if n < 0 {
		n, delta = -n, -1
	}
	if i >= start && i < start+n {
		h.Scroll(delta)
	}
}

func reportSPIRV() {
	for _, p := range []shader.Program{
		shader.NewPlaneProgram(0, carousel.DefaultBorderRadius),
		shader.NewCardProgram(nil),
	} {
		words, err := shader.Compile(p)
		if err != nil {
			log.Printf("%s: %v", p.Name(), err)
			continue
		}
		log.Printf("%s: %d SPIR-V words", p.Name(), len(words))
	}
}
