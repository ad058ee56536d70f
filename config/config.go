package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gogpu/gg"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/gogpu/carousel"
	"github.com/gogpu/carousel/item"
)

// Errors returned while interpreting a file.
var (
	// ErrInvalidColor is returned for colours that are not #rgb, #rgba,
	// #rrggbb or #rrggbbaa.
	ErrInvalidColor = errors.New("config: invalid colour")

	// ErrInvalidDate is returned for due dates that are neither YYYY-MM-DD
	// nor RFC 3339.
	ErrInvalidDate = errors.New("config: invalid due date")
)

// File is the parsed form of a carousel TOML file.
type File struct {
	Carousel Settings `toml:"carousel"`
	Items    []Item   `toml:"items"`
}

// Settings mirrors the carousel options.
type Settings struct {
	Bend         float64 `toml:"bend"`
	TextColor    string  `toml:"text_color"`
	BorderRadius float64 `toml:"border_radius"`
	Font         string  `toml:"font"`
	ScrollSpeed  float64 `toml:"scroll_speed"`
	ScrollEase   float64 `toml:"scroll_ease"`
	Locale       string  `toml:"locale"`
	Background   string  `toml:"background"`

	// Photos turns background photo loading on or off.
	Photos bool `toml:"photos"`
}

// Item is one [[items]] entry.
type Item struct {
	ID          string `toml:"id"`
	Label       string `toml:"label"`
	Description string `toml:"description"`
	Status      string `toml:"status"`
	Priority    string `toml:"priority"`
	ImageURL    string `toml:"image_url"`
	DueDate     string `toml:"due_date"`
}

// Default returns the settings a file without a [carousel] table gets.
func Default() File {
	return File{
		Carousel: Settings{
			Bend:         carousel.DefaultBend,
			TextColor:    "#ffffff",
			BorderRadius: carousel.DefaultBorderRadius,
			Font:         carousel.DefaultFont,
			ScrollSpeed:  carousel.DefaultScrollSpeed,
			ScrollEase:   carousel.DefaultScrollEase,
			Locale:       "en-US",
			Background:   "#00000000",
			Photos:       true,
		},
	}
}

// Load reads the file at path. A missing file yields the defaults.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return File{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes TOML data over the defaults.
func Parse(data []byte) (File, error) {
	f := Default()
	if err := toml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("config: parse: %w", err)
	}
	return f, nil
}

// CarouselItems converts the [[items]] entries. Unknown statuses and
// priorities fall back to todo and medium.
func (f File) CarouselItems() ([]item.Item, error) {
	items := make([]item.Item, 0, len(f.Items))
	for i, c := range f.Items {
		it := item.Item{
			ID:          c.ID,
			Label:       c.Label,
			Description: c.Description,
			ImageURL:    c.ImageURL,
		}
		it.Status, _ = item.ParseStatus(c.Status)
		it.Priority, _ = item.ParsePriority(c.Priority)
		if it.ID == "" {
			it.ID = item.StableID(c.Label, i)
		}
		if c.DueDate != "" {
			due, err := parseDate(c.DueDate)
			if err != nil {
				return nil, fmt.Errorf("config: item %d (%q): %w", i, c.Label, err)
			}
			it.DueDate = due
		}
		items = append(items, it)
	}
	return items, nil
}

// Options converts the file into carousel options. Photo loading is left to
// the carousel default unless the file turns it off.
func (f File) Options() ([]carousel.Option, error) {
	s := f.Carousel
	items, err := f.CarouselItems()
	if err != nil {
		return nil, err
	}
	text, err := ParseColor(s.TextColor)
	if err != nil {
		return nil, fmt.Errorf("config: text_color: %w", err)
	}
	bg, err := ParseColor(s.Background)
	if err != nil {
		return nil, fmt.Errorf("config: background: %w", err)
	}
	tag, err := language.Parse(s.Locale)
	if err != nil {
		return nil, fmt.Errorf("config: locale %q: %w", s.Locale, err)
	}

	opts := []carousel.Option{
		carousel.WithItems(items),
		carousel.WithBend(s.Bend),
		carousel.WithTextColor(text),
		carousel.WithBorderRadius(s.BorderRadius),
		carousel.WithFont(s.Font),
		carousel.WithScrollSpeed(s.ScrollSpeed),
		carousel.WithScrollEase(s.ScrollEase),
		carousel.WithLocale(tag),
		carousel.WithBackground(bg),
	}
	if !s.Photos {
		opts = append(opts, carousel.WithImageLoader(nil))
	}
	return opts, nil
}

// ParseColor parses a CSS-style hex colour. The leading # is optional.
func ParseColor(s string) (gg.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	return gg.Hex(hex), nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}
