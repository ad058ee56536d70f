package carousel

import (
	"github.com/gogpu/gg"
	"golang.org/x/text/language"

	"github.com/gogpu/carousel/asset"
	"github.com/gogpu/carousel/item"
	"github.com/gogpu/carousel/render"
	"github.com/gogpu/carousel/texture"
)

// Defaults applied by New.
const (
	DefaultBend         = 3
	DefaultBorderRadius = 0.05
	DefaultFont         = "bold 30px Figtree"
	DefaultScrollSpeed  = 2
	DefaultScrollEase   = 0.05
)

// Option configures a Carousel during creation.
//
// Example:
//
//	c, err := carousel.New(h, loop,
//	    carousel.WithItems(items),
//	    carousel.WithBend(-2),
//	    carousel.WithScrollEase(0.1),
//	)
type Option func(*options)

// options holds the configuration collected from Options.
type options struct {
	items         []item.Item
	bend          float64
	textColor     gg.RGBA
	borderRadius  float64
	font          string
	scrollSpeed   float64
	scrollEase    float64
	onSelect      func(index int)
	locale        language.Tag
	loader        asset.Loader
	loaderSet     bool
	renderer      render.Renderer
	background    gg.RGBA
	textureWidth  int
	textureHeight int
	phase         func() float64
	observer      Observer
}

// defaultOptions returns the default carousel options.
func defaultOptions() options {
	return options{
		bend:          DefaultBend,
		textColor:     gg.White,
		borderRadius:  DefaultBorderRadius,
		font:          DefaultFont,
		scrollSpeed:   DefaultScrollSpeed,
		scrollEase:    DefaultScrollEase,
		locale:        language.AmericanEnglish,
		background:    gg.Transparent,
		textureWidth:  texture.DefaultWidth,
		textureHeight: texture.DefaultHeight,
	}
}

// WithItems sets the items shown on the track. An empty list shows the
// built-in placeholder items instead.
func WithItems(items []item.Item) Option {
	return func(o *options) {
		o.items = items
	}
}

// WithBend sets the arc sag of the track at the viewport edges in world
// units. Positive values curve the track down, negative values up, zero
// keeps it flat.
func WithBend(bend float64) Option {
	return func(o *options) {
		o.bend = bend
	}
}

// WithTextColor sets the card title color.
func WithTextColor(c gg.RGBA) Option {
	return func(o *options) {
		o.textColor = c
	}
}

// WithBorderRadius sets the plane corner radius as a fraction of the plane
// size, in [0, 0.5].
func WithBorderRadius(r float64) Option {
	return func(o *options) {
		o.borderRadius = min(max(r, 0), 0.5)
	}
}

// WithFont sets the card title font as a CSS-style shorthand such as
// "bold 30px Figtree". Weight and family select among the built-in faces.
func WithFont(spec string) Option {
	return func(o *options) {
		o.font = spec
	}
}

// WithScrollSpeed sets the gesture sensitivity multiplier.
func WithScrollSpeed(speed float64) Option {
	return func(o *options) {
		o.scrollSpeed = speed
	}
}

// WithScrollEase sets the fraction of the remaining distance the track
// covers each frame. Values outside (0, 1] are replaced by the default.
func WithScrollEase(ease float64) Option {
	return func(o *options) {
		o.scrollEase = ease
	}
}

// WithOnSelect sets the callback invoked with the logical item index when a
// card is clicked.
func WithOnSelect(fn func(index int)) Option {
	return func(o *options) {
		o.onSelect = fn
	}
}

// WithLocale sets the locale used to format due dates.
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.locale = tag
	}
}

// WithImageLoader sets the loader for background photos. A nil loader
// disables photos.
func WithImageLoader(l asset.Loader) Option {
	return func(o *options) {
		o.loader = l
		o.loaderSet = true
	}
}

// WithRenderer sets the renderer that draws each frame.
// The default is a render.SoftwareRenderer.
func WithRenderer(r render.Renderer) Option {
	return func(o *options) {
		o.renderer = r
	}
}

// WithBackground sets the color the surface is cleared to each frame.
// The default is transparent.
func WithBackground(c gg.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithTextureSize sets the card artwork raster size.
func WithTextureSize(width, height int) Option {
	return func(o *options) {
		o.textureWidth = width
		o.textureHeight = height
	}
}

// WithPhase sets the source of each plane's starting wave phase. The
// default draws uniformly from [0, 100).
func WithPhase(fn func() float64) Option {
	return func(o *options) {
		o.phase = fn
	}
}

// WithObserver reports frame and photo statistics to o.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		opts.observer = o
	}
}
