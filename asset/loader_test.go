package asset

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func pngBytes(t *testing.T, w, h int, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestLoadHTTP(t *testing.T) {
	body := pngBytes(t, 8, 4, color.RGBA{255, 0, 0, 255})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/photo.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	src := NewSource(WithHTTPClient(srv.Client()))
	img, err := src.Load(context.Background(), srv.URL+"/photo.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 4 {
		t.Errorf("size = %v, want 8x4", img.Bounds())
	}
	if got := img.RGBAAt(3, 2); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("pixel = %v, want red", got)
	}

	if _, err := src.Load(context.Background(), srv.URL+"/missing.png"); err == nil {
		t.Error("expected an error for a 404")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.png"), pngBytes(t, 2, 2, color.RGBA{0, 0, 255, 255}), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		src  *Source
		ref  string
	}{
		{"absolute path", NewSource(), filepath.Join(dir, "a.png")},
		{"file url", NewSource(), "file://" + filepath.ToSlash(filepath.Join(dir, "a.png"))},
		{"relative to base", NewSource(WithBaseDir(dir)), "a.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := tt.src.Load(context.Background(), tt.ref)
			if err != nil {
				t.Fatalf("Load(%q): %v", tt.ref, err)
			}
			if img.RGBAAt(1, 1).B != 255 {
				t.Errorf("pixel = %v, want blue", img.RGBAAt(1, 1))
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	src := NewSource()
	ctx := context.Background()

	if _, err := src.Load(ctx, ""); !errors.Is(err, ErrEmptyRef) {
		t.Errorf("empty ref: err = %v", err)
	}
	if _, err := src.Load(ctx, "ftp://example.com/a.png"); !errors.Is(err, ErrUnsupportedScheme) {
		t.Errorf("ftp: err = %v", err)
	}
	if _, err := src.Load(ctx, filepath.Join(t.TempDir(), "nope.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: err = %v", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := src.Load(ctx, bad); err == nil {
		t.Error("garbage decoded without error")
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name         string
		w, h, max    int
		wantW, wantH int
	}{
		{"small kept", 100, 50, 1024, 100, 50},
		{"wide scaled", 4000, 1000, 1000, 1000, 250},
		{"tall scaled", 300, 1200, 600, 150, 600},
		{"no bound", 3000, 10, 0, 3000, 10},
		{"sliver", 5000, 1, 100, 100, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fit(image.NewRGBA(image.Rect(0, 0, tt.w, tt.h)), tt.max)
			if got.Bounds().Dx() != tt.wantW || got.Bounds().Dy() != tt.wantH {
				t.Errorf("Fit = %v, want %dx%d", got.Bounds(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestLoaderFunc(t *testing.T) {
	want := image.NewRGBA(image.Rect(0, 0, 1, 1))
	var l Loader = LoaderFunc(func(context.Context, string) (*image.RGBA, error) { return want, nil })
	got, err := l.Load(context.Background(), "x")
	if err != nil || got != want {
		t.Errorf("LoaderFunc = %v, %v", got, err)
	}
}
