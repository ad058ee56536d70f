package texture

import (
	"fmt"
	"image"
	"image/draw"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/carousel/item"
)

// Card layout in raster pixels.
const (
	padding         = 40
	titleTop        = padding + 40
	titleSize       = 48
	titleLeading    = 60
	bodySize        = 32
	bodyLeading     = 40
	badgeLabelSize  = 24
	dateSize        = 24
	borderWidth     = 10
	dividerWidth    = 2
	bottomAreaInset = 150

	statusBadgeWidth   = 200
	priorityBadgeX     = 220
	priorityBadgeWidth = 180
	badgeHeight        = 60
	badgeRadius        = 30

	noDescription = "No description provided."
	untitled      = "Untitled Task"
)

// Style is the configurable part of the card artwork. Everything else about
// the layout and palette is fixed.
type Style struct {
	// TitleColor fills the title text.
	TitleColor gg.RGBA

	// TitleFont selects the title's family and weight. Its size is ignored;
	// titles are always laid out at 48 px.
	TitleFont FontSpec

	// Locale formats the due date.
	Locale language.Tag
}

// DefaultStyle returns white bold titles and US date formatting.
func DefaultStyle() Style {
	return Style{
		TitleColor: gg.White,
		TitleFont:  FontSpec{Bold: true},
		Locale:     language.AmericanEnglish,
	}
}

// Synthesizer renders items into card textures. It holds no per-item state
// and is safe for concurrent use; each Synthesize call allocates its own
// raster.
type Synthesizer struct {
	width, height int
	style         Style
	logger        *slog.Logger
}

// NewSynthesizer creates a Synthesizer producing DefaultWidth×DefaultHeight
// rasters. A nil logger discards diagnostics.
func NewSynthesizer(style Style, logger *slog.Logger) *Synthesizer {
	return NewSynthesizerSize(DefaultWidth, DefaultHeight, style, logger)
}

// NewSynthesizerSize is like NewSynthesizer with an explicit raster size.
// A non-positive size yields empty textures.
func NewSynthesizerSize(width, height int, style Style, logger *slog.Logger) *Synthesizer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Synthesizer{
		width:  width,
		height: height,
		style:  style,
		logger: logger,
	}
}

// Size returns the raster size the Synthesizer produces.
func (s *Synthesizer) Size() (width, height int) {
	return s.width, s.height
}

// Synthesize renders it into a new texture. It never panics: any failure is
// logged and reported as an empty texture.
func (s *Synthesizer) Synthesize(it item.Item) (tex Texture) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("texture: synthesis panicked",
				"item", it.ID, "panic", fmt.Sprint(r))
			tex = Texture{}
		}
	}()

	img, err := s.render(it)
	if err != nil {
		s.logger.Warn("texture: synthesis failed, using blank texture",
			"item", it.ID, "err", err)
		return Texture{}
	}
	return Texture{Image: img}
}

func (s *Synthesizer) render(it item.Item) (*image.RGBA, error) {
	if s.width <= 0 || s.height <= 0 {
		return nil, fmt.Errorf("texture: invalid raster size %dx%d", s.width, s.height)
	}
	fs, err := loadFonts()
	if err != nil {
		return nil, err
	}

	w, h := float64(s.width), float64(s.height)
	upper := cases.Upper(language.Und)
	dc := gg.NewContext(s.width, s.height)
	defer func() { _ = dc.Close() }()

	// Background.
	bg := gg.NewLinearGradientBrush(0, 0, 0, h).
		AddColorStop(0, backgroundTop).
		AddColorStop(1, backgroundBottom)
	dc.SetFillBrush(bg)
	dc.DrawRectangle(0, 0, w, h)
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("texture: fill background: %w", err)
	}

	// Status border. The stroke is centred on the raster edge, so half of it
	// falls outside the image.
	accent := AccentColor(it.Status)
	dc.SetStrokeBrush(gg.Solid(accent))
	dc.SetLineWidth(borderWidth)
	dc.DrawRectangle(0, 0, w, h)
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("texture: stroke border: %w", err)
	}

	contentWidth := w - 2*padding
	cursorY := float64(titleTop)

	// Title.
	title := it.Label
	if title == "" {
		title = untitled
	}
	dc.SetFont(fs.face(s.style.TitleFont, titleSize))
	setColor(dc, s.style.TitleColor)
	cursorY = drawWrapped(dc, title, padding, cursorY, contentWidth, titleLeading)

	// Divider.
	cursorY += 20
	dc.SetStrokeBrush(gg.Solid(dividerColor))
	dc.SetLineWidth(dividerWidth)
	dc.DrawLine(padding, cursorY, w-padding, cursorY)
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("texture: stroke divider: %w", err)
	}
	cursorY += 40

	// Description.
	dc.SetFont(fs.regular.Face(bodySize))
	if it.Description != "" {
		setColor(dc, descriptionColor)
		drawWrapped(dc, it.Description, padding, cursorY, contentWidth, bodyLeading)
	} else {
		setColor(dc, placeholderColor)
		drawTop(dc, noDescription, padding, cursorY)
	}

	// Badges pinned to the bottom area.
	bottom := h - bottomAreaInset
	midY := bottom + badgeHeight/2

	setColor(dc, accent)
	dc.DrawRoundedRectangle(padding, bottom, statusBadgeWidth, badgeHeight, badgeRadius)
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("texture: fill status badge: %w", err)
	}
	dc.SetFont(fs.bold.Face(badgeLabelSize))
	setColor(dc, statusLabelColor)
	drawCentered(dc, upper.String(statusLabel(it.Status)), padding+statusBadgeWidth/2, midY)

	setColor(dc, PriorityColor(it.Priority))
	dc.DrawRoundedRectangle(padding+priorityBadgeX, bottom, priorityBadgeWidth, badgeHeight, badgeRadius)
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("texture: fill priority badge: %w", err)
	}
	setColor(dc, priorityLabel)
	drawCentered(dc, upper.String(priorityText(it.Priority)), padding+priorityBadgeX+priorityBadgeWidth/2, midY)

	if it.HasDueDate() {
		dc.SetFont(fs.regular.Face(dateSize))
		setColor(dc, dateColor)
		drawRightMiddle(dc, FormatDate(it.DueDate, s.style.Locale), w-padding, midY)
	}

	_ = dc.FlushGPU()
	return toRGBA(dc.Image()), nil
}

func statusLabel(st item.Status) string {
	if st == "" {
		return string(item.StatusTodo)
	}
	return string(st)
}

func priorityText(p item.Priority) string {
	if p == "" {
		return string(item.PriorityMedium)
	}
	return string(p)
}

func setColor(dc *gg.Context, c gg.RGBA) {
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}

// drawWrapped lays s out top-aligned from (x, y), one line per leading, and
// returns the y just below the last line.
func drawWrapped(dc *gg.Context, s string, x, y, maxWidth, leading float64) float64 {
	for _, line := range Wrap(s, dc.Font(), maxWidth) {
		drawTop(dc, line, x, y)
		y += leading
	}
	return y
}

// drawTop draws s with its ascender line at y.
func drawTop(dc *gg.Context, s string, x, y float64) {
	dc.DrawString(s, x, y+ascent(dc.Font()))
}

// drawCentered centres s horizontally on cx and vertically on cy.
func drawCentered(dc *gg.Context, s string, cx, cy float64) {
	w, _ := dc.MeasureString(s)
	dc.DrawString(s, cx-w/2, middleBaseline(dc.Font(), cy))
}

// drawRightMiddle ends s at x, vertically centred on cy.
func drawRightMiddle(dc *gg.Context, s string, x, cy float64) {
	w, _ := dc.MeasureString(s)
	dc.DrawString(s, x-w, middleBaseline(dc.Font(), cy))
}

func ascent(f text.Face) float64 {
	if f == nil {
		return 0
	}
	return f.Metrics().Ascent
}

func middleBaseline(f text.Face, cy float64) float64 {
	if f == nil {
		return cy
	}
	m := f.Metrics()
	return cy + (m.Ascent-m.Descent)/2
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
