package asset

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
	"golang.org/x/sync/singleflight"
)

// Defaults for Source.
const (
	DefaultMaxSize = 1024
	DefaultTimeout = 15 * time.Second

	// maxBodyBytes bounds a fetched photo.
	maxBodyBytes = 32 << 20
)

// Errors returned by Source.
var (
	ErrUnsupportedScheme = errors.New("asset: unsupported URL scheme")
	ErrEmptyRef          = errors.New("asset: empty reference")
)

// Loader loads a photo by reference.
type Loader interface {
	Load(ctx context.Context, ref string) (*image.RGBA, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context, ref string) (*image.RGBA, error)

// Load implements Loader.
func (f LoaderFunc) Load(ctx context.Context, ref string) (*image.RGBA, error) {
	return f(ctx, ref)
}

// Source is the default Loader. Concurrent loads of the same reference share
// one fetch.
type Source struct {
	client  *http.Client
	maxSize int
	baseDir string
	logger  *slog.Logger

	group singleflight.Group
}

// Option configures a Source.
type Option func(*Source)

// WithHTTPClient sets the client used for http and https references.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Source) {
		s.client = c
	}
}

// WithMaxSize bounds the longer side of decoded photos. Zero or less keeps
// photos at their natural size.
func WithMaxSize(px int) Option {
	return func(s *Source) {
		s.maxSize = px
	}
}

// WithBaseDir resolves relative file references against dir.
func WithBaseDir(dir string) Option {
	return func(s *Source) {
		s.baseDir = dir
	}
}

// WithLogger sets the logger for load diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Source) {
		s.logger = l
	}
}

// NewSource creates a Source.
func NewSource(opts ...Option) *Source {
	s := &Source{
		client:  &http.Client{Timeout: DefaultTimeout},
		maxSize: DefaultMaxSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s
}

// Load implements Loader. The returned image is shared between concurrent
// callers and must not be modified.
func (s *Source) Load(ctx context.Context, ref string) (*image.RGBA, error) {
	if ref == "" {
		return nil, ErrEmptyRef
	}
	v, err, shared := s.group.Do(ref, func() (any, error) {
		return s.load(ctx, ref)
	})
	if err != nil {
		return nil, err
	}
	img := v.(*image.RGBA)
	s.logger.Debug("asset: loaded", "ref", ref,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy(), "shared", shared)
	return img, nil
}

func (s *Source) load(ctx context.Context, ref string) (*image.RGBA, error) {
	rc, err := s.open(ctx, ref)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	img, format, err := image.Decode(io.LimitReader(rc, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("asset: decode %s: %w", ref, err)
	}
	s.logger.Debug("asset: decoded", "ref", ref, "format", format)
	return Fit(img, s.maxSize), nil
}

func (s *Source) open(ctx context.Context, ref string) (io.ReadCloser, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("asset: parse %q: %w", ref, err)
	}
	switch u.Scheme {
	case "http", "https":
		return s.fetch(ctx, ref)
	case "file":
		return s.openFile(u.Path)
	case "":
		return s.openFile(ref)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
}

func (s *Source) fetch(ctx context.Context, ref string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("asset: request %s: %w", ref, err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("asset: fetch %s: %w", ref, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("asset: fetch %s: %s", ref, resp.Status)
	}
	return resp.Body, nil
}

func (s *Source) openFile(path string) (io.ReadCloser, error) {
	if s.baseDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(s.baseDir, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("asset: %w", err)
	}
	return f, nil
}

// Fit converts img to RGBA, scaling it down so neither side exceeds maxSize
// while keeping its aspect ratio. A non-positive maxSize only converts.
func Fit(img image.Image, maxSize int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize > 0 && (w > maxSize || h > maxSize) {
		if w >= h {
			h = max(1, h*maxSize/w)
			w = maxSize
		} else {
			w = max(1, w*maxSize/h)
			h = maxSize
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return dst
	}
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Ensure Source implements Loader.
var _ Loader = (*Source)(nil)
