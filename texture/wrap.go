package texture

import (
	"strings"

	"github.com/gogpu/gg/text"
)

// Wrap breaks s into lines that fit maxWidth when set in face. Breaking is
// done by gg's word wrapper; a word is never split, so a single word wider
// than maxWidth occupies a line of its own.
//
// A line is measured together with the space that would follow it, so the
// last word of s moves down when it only fits without that space.
//
// The returned lines carry no trailing space. Wrap always returns at least one
// line, which is empty for empty input.
func Wrap(s string, face text.Face, maxWidth float64) []string {
	if face == nil {
		return []string{s}
	}
	wrapped := text.WrapText(s, face, maxWidth, text.WrapWord)
	lines := make([]string, 0, len(wrapped)+1)
	for _, r := range wrapped {
		lines = append(lines, strings.TrimRight(r.Text, " "))
	}
	if len(lines) == 0 {
		return []string{""}
	}

	last := lines[len(lines)-1]
	cut := strings.LastIndexByte(last, ' ')
	if maxWidth > 0 && cut > 0 && text.MeasureText(last+" ", face) > maxWidth {
		lines[len(lines)-1] = strings.TrimRight(last[:cut], " ")
		lines = append(lines, last[cut+1:])
	}
	return lines
}
