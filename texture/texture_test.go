package texture

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/gogpu/gg/text"
	"golang.org/x/text/language"

	"github.com/gogpu/carousel/item"
)

func monoFace(t *testing.T) (text.Face, float64) {
	t.Helper()
	fs, err := loadFonts()
	if err != nil {
		t.Fatal(err)
	}
	face := fs.mono.Face(20)
	adv := text.MeasureText("a", face)
	if adv <= 0 {
		t.Fatalf("advance = %v", adv)
	}
	return face, adv
}

func TestWrap(t *testing.T) {
	face, adv := monoFace(t)
	tests := []struct {
		name  string
		in    string
		chars float64
		want  []string
	}{
		{"empty", "", 10.5, []string{""}},
		{"fits", "one two", 10.5, []string{"one two"}},
		// "one two " is 8 advances; "three" would end at 13.
		{"breaks", "one two three", 10.5, []string{"one two", "three"}},
		{"long first word stays", "abcdefghijklmnop q", 5.5, []string{"abcdefghijklmnop", "q"}},
		{"every word", "aaaa bbbb cccc", 6.5, []string{"aaaa", "bbbb", "cccc"}},
		// "abcd efgh" is 9 advances but "abcd efgh " is 10.
		{"trailing space measured", "abcd efgh", 9.5, []string{"abcd", "efgh"}},
		{"trailing space fits", "abcd efgh", 10.5, []string{"abcd efgh"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.in, face, tt.chars*adv)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("Wrap(%q, %v chars) = %q, want %q", tt.in, tt.chars, got, tt.want)
			}
		})
	}
}

func TestParseFontSpec(t *testing.T) {
	tests := []struct {
		in   string
		want FontSpec
		mono bool
	}{
		{"bold 30px Figtree", FontSpec{Bold: true, Size: 30, Family: "Figtree"}, false},
		{"30px sans-serif", FontSpec{Size: 30, Family: "sans-serif"}, false},
		{"700 12px JetBrains Mono", FontSpec{Bold: true, Size: 12, Family: "JetBrains Mono"}, true},
		{"normal 14px 'Courier New'", FontSpec{Size: 14, Family: "Courier New"}, true},
		{"", FontSpec{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseFontSpec(tt.in)
			if got != tt.want {
				t.Errorf("ParseFontSpec(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			if got.Monospace() != tt.mono {
				t.Errorf("Monospace() = %v, want %v", got.Monospace(), tt.mono)
			}
		})
	}
}

func TestFontSpecString(t *testing.T) {
	spec := FontSpec{Bold: true, Size: 30, Family: "Figtree"}
	if got := spec.String(); got != "bold 30px Figtree" {
		t.Errorf("String() = %q", got)
	}
	if got := ParseFontSpec(spec.String()); got != spec {
		t.Errorf("round trip = %+v, want %+v", got, spec)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		tag  language.Tag
		want string
	}{
		{language.AmericanEnglish, "3/7/2026"},
		{language.English, "3/7/2026"},
		{language.BritishEnglish, "07/03/2026"},
		{language.German, "7.3.2026"},
		{language.MustParse("de-AT"), "7.3.2026"},
		{language.Japanese, "2026/3/7"},
		{language.Und, "3/7/2026"},
	}
	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			if got := FormatDate(d, tt.tag); got != tt.want {
				t.Errorf("FormatDate(%v) = %q, want %q", tt.tag, got, tt.want)
			}
		})
	}
}

func near(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

func assertPixel(t *testing.T, tex Texture, x, y int, want color.RGBA, tol int) {
	t.Helper()
	got := tex.Image.RGBAAt(x, y)
	if !near(got.R, want.R, tol) || !near(got.G, want.G, tol) || !near(got.B, want.B, tol) {
		t.Errorf("pixel (%d,%d) = %v, want ~%v", x, y, got, want)
	}
}

func sampleItem() item.Item {
	return item.Item{
		ID:       "t1",
		Label:    "Write release notes",
		Status:   item.StatusInProgress,
		Priority: item.PriorityHigh,
		DueDate:  time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestSynthesizeLayout(t *testing.T) {
	synth := NewSynthesizer(DefaultStyle(), nil)
	tex := synth.Synthesize(sampleItem())

	if tex.Empty() {
		t.Fatal("Synthesize returned an empty texture")
	}
	if tex.Width() != DefaultWidth || tex.Height() != DefaultHeight {
		t.Fatalf("size = %dx%d, want %dx%d", tex.Width(), tex.Height(), DefaultWidth, DefaultHeight)
	}

	// Border in the in-progress accent.
	assertPixel(t, tex, 2, 400, color.RGBA{0xea, 0xb3, 0x08, 0xff}, 16)
	assertPixel(t, tex, 597, 400, color.RGBA{0xea, 0xb3, 0x08, 0xff}, 16)

	// Priority badge fill (left cap of the pill, clear of the label).
	assertPixel(t, tex, padding+priorityBadgeX+10, DefaultHeight-bottomAreaInset+badgeHeight/2,
		color.RGBA{0xef, 0x44, 0x44, 0xff}, 16)

	// Plain gradient between the description and the badges.
	assertPixel(t, tex, 300, 560, color.RGBA{0x12, 0x12, 0x12, 0xff}, 4)
}

func TestSynthesizeStatusAccent(t *testing.T) {
	synth := NewSynthesizer(DefaultStyle(), nil)
	tests := []struct {
		status item.Status
		want   color.RGBA
	}{
		{item.StatusTodo, color.RGBA{0x6b, 0x72, 0x80, 0xff}},
		{item.StatusDone, color.RGBA{0x22, 0xc5, 0x5e, 0xff}},
		{"", color.RGBA{0x6b, 0x72, 0x80, 0xff}},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			tex := synth.Synthesize(item.Item{Label: "x", Status: tt.status})
			assertPixel(t, tex, 2, 300, tt.want, 16)
		})
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	synth := NewSynthesizer(DefaultStyle(), nil)
	a := synth.Synthesize(sampleItem())
	b := synth.Synthesize(sampleItem())
	if !bytes.Equal(a.Image.Pix, b.Image.Pix) {
		t.Error("two syntheses of the same item differ")
	}

	other := sampleItem()
	other.Description = "Collect merged changes and highlight breaking ones for the upgrade guide."
	c := synth.Synthesize(other)
	if bytes.Equal(a.Image.Pix, c.Image.Pix) {
		t.Error("description did not change the artwork")
	}
}

func TestSynthesizeBlankOnFailure(t *testing.T) {
	synth := NewSynthesizerSize(0, 0, DefaultStyle(), nil)
	tex := synth.Synthesize(sampleItem())
	if !tex.Empty() || tex.Width() != 0 || tex.Height() != 0 {
		t.Errorf("expected empty texture, got %dx%d", tex.Width(), tex.Height())
	}
}

func TestCache(t *testing.T) {
	cache := NewCache(NewSynthesizerSize(60, 80, DefaultStyle(), nil))

	a := cache.Get(item.Item{ID: "a", Label: "A"})
	a2 := cache.Get(item.Item{ID: "a", Label: "A"})
	if a.Image != a2.Image {
		t.Error("second Get for the same id synthesized a new raster")
	}
	cache.Get(item.Item{ID: "b", Label: "B"})

	if cache.Len() != 2 {
		t.Errorf("Len() = %d, want 2", cache.Len())
	}
	if cache.Misses() != 2 {
		t.Errorf("Misses() = %d, want 2", cache.Misses())
	}
}

func TestCacheItemsWithoutID(t *testing.T) {
	cache := NewCache(NewSynthesizerSize(60, 80, DefaultStyle(), nil))

	anon := item.Item{Label: "anonymous", Status: item.StatusDone}
	a := cache.Get(anon)
	a2 := cache.Get(anon)
	if a.Image != a2.Image {
		t.Error("an item without an ID was synthesized twice")
	}

	other := anon
	other.Label = "someone else"
	if b := cache.Get(other); b.Image == a.Image {
		t.Error("different items without IDs shared a texture")
	}
	if cache.Misses() != 2 {
		t.Errorf("Misses() = %d, want 2", cache.Misses())
	}
}
