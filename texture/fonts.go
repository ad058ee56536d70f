package texture

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontSpec is a parsed CSS-like font shorthand such as "bold 30px Figtree".
type FontSpec struct {
	Bold   bool
	Size   float64
	Family string
}

// ParseFontSpec parses a font shorthand. Tokens are a weight ("bold",
// "normal", or a numeric weight), a size with a "px" suffix, and the
// remaining tokens form the family name. Unrecognised tokens are folded into
// the family; a missing size is reported as 0.
func ParseFontSpec(s string) FontSpec {
	var spec FontSpec
	var family []string
	for _, tok := range strings.Fields(s) {
		lower := strings.ToLower(tok)
		switch {
		case lower == "bold" || lower == "bolder":
			spec.Bold = true
		case lower == "normal" || lower == "regular":
		case strings.HasSuffix(lower, "px"):
			if v, err := strconv.ParseFloat(strings.TrimSuffix(lower, "px"), 64); err == nil {
				spec.Size = v
				continue
			}
			family = append(family, tok)
		default:
			if w, err := strconv.Atoi(lower); err == nil && w >= 100 && w <= 900 {
				spec.Bold = w >= 600
				continue
			}
			family = append(family, tok)
		}
	}
	spec.Family = strings.Trim(strings.Join(family, " "), ",\"' ")
	return spec
}

// Monospace reports whether the family asks for a fixed-width face.
func (f FontSpec) Monospace() bool {
	fam := strings.ToLower(f.Family)
	return strings.Contains(fam, "mono") || strings.Contains(fam, "courier")
}

// String formats f back into CSS font shorthand.
func (f FontSpec) String() string {
	var parts []string
	if f.Bold {
		parts = append(parts, "bold")
	}
	if f.Size > 0 {
		parts = append(parts, strconv.FormatFloat(f.Size, 'f', -1, 64)+"px")
	}
	if f.Family != "" {
		parts = append(parts, f.Family)
	}
	return strings.Join(parts, " ")
}

// fontSet holds the parsed Go font family. Font sources are heavyweight and
// shared by every Synthesizer in the process.
type fontSet struct {
	regular  *text.FontSource
	bold     *text.FontSource
	mono     *text.FontSource
	monoBold *text.FontSource
}

var (
	fontsOnce sync.Once
	fonts     *fontSet
	fontsErr  error
)

func loadFonts() (*fontSet, error) {
	fontsOnce.Do(func() {
		fs := &fontSet{}
		for _, f := range []struct {
			name string
			data []byte
			dst  **text.FontSource
		}{
			{"goregular", goregular.TTF, &fs.regular},
			{"gobold", gobold.TTF, &fs.bold},
			{"gomono", gomono.TTF, &fs.mono},
			{"gomonobold", gomonobold.TTF, &fs.monoBold},
		} {
			src, err := text.NewFontSource(f.data)
			if err != nil {
				fontsErr = fmt.Errorf("texture: load %s: %w", f.name, err)
				return
			}
			*f.dst = src
		}
		fonts = fs
	})
	return fonts, fontsErr
}

// face returns a face of the given size in the requested family and weight.
func (fs *fontSet) face(spec FontSpec, size float64) text.Face {
	src := fs.regular
	switch {
	case spec.Monospace() && spec.Bold:
		src = fs.monoBold
	case spec.Monospace():
		src = fs.mono
	case spec.Bold:
		src = fs.bold
	}
	return src.Face(size)
}
