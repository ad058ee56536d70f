package headless

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/carousel/host"
	"github.com/gogpu/carousel/render"
)

func TestListenDetach(t *testing.T) {
	h := New(100, 50)

	var got []host.EventKind
	detach := h.Listen(func(ev host.Event) { got = append(got, ev.Kind) })
	h.Click(10, 10)
	h.Scroll(-3)
	detach()
	h.Click(10, 10)

	want := []host.EventKind{host.PointerDown, host.PointerUp, host.Wheel}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
	if h.Listeners() != 0 {
		t.Errorf("Listeners = %d after detach", h.Listeners())
	}
}

func TestDragSequence(t *testing.T) {
	h := New(100, 50)
	var xs []float64
	h.Listen(func(ev host.Event) { xs = append(xs, ev.X) })
	h.Drag(0, 30, 5, 3)

	want := []float64{0, 10, 20, 30, 30}
	if len(xs) != len(want) {
		t.Fatalf("xs = %v, want %v", xs, want)
	}
	for i := range want {
		if xs[i] != want[i] {
			t.Errorf("xs[%d] = %v, want %v", i, xs[i], want[i])
		}
	}
}

func TestSetSizeEmitsResize(t *testing.T) {
	h := New(100, 50)
	resized := false
	h.Listen(func(ev host.Event) { resized = ev.Kind == host.Resize })
	h.SetSize(300, 200)
	if w, ht := h.ClientSize(); w != 300 || ht != 200 || !resized {
		t.Errorf("ClientSize = %dx%d, resized = %v", w, ht, resized)
	}
}

func TestMountPresent(t *testing.T) {
	var presented []int
	h := New(4, 2, WithPresentFunc(func(n int, img *image.RGBA) {
		presented = append(presented, n)
	}))

	target := render.NewPixmapTarget(4, 2)
	h.Mount(target)
	if h.Mounted() != target {
		t.Fatal("Mounted did not return the target")
	}

	target.Clear(color.RGBA{1, 2, 3, 255})
	h.Present(target)
	target.Clear(color.Transparent)
	h.Present(target)

	if h.Frames() != 2 || len(presented) != 2 || presented[1] != 2 {
		t.Errorf("frames = %d, presented = %v", h.Frames(), presented)
	}
	if got := h.LastFrame().RGBAAt(3, 1); got.A != 0 {
		t.Errorf("last frame pixel = %v, want transparent", got)
	}

	h.Unmount(target)
	if h.Mounted() != nil {
		t.Error("Unmount left the target mounted")
	}
}
