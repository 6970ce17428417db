package report

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/m-mizutani/gt"
)

// fixedMeasurer gives every rune the same advance, proportional to font size.
type fixedMeasurer struct{}

func (fixedMeasurer) StringWidth(text string, font Font) float64 {
	return float64(utf8.RuneCountInString(text)) * font.Size * 0.25
}

func TestWrapRoundTrip(t *testing.T) {
	m := fixedMeasurer{}
	text := "Coordinated efforts across multiple districts addressing traffic safety concerns " +
		"with measurable improvements in incident response times and   community    engagement."

	for _, width := range []float64{30, 45, 60, 170} {
		lines := Wrap(m, text, width, fontBody)
		gt.True(t, len(lines) > 0)
		gt.Equal(t, strings.Join(lines, " "), strings.Join(strings.Fields(text), " "))
		for _, l := range lines {
			gt.True(t, m.StringWidth(l, fontBody) <= width)
		}
	}
}

func TestWrapSplitsLongWords(t *testing.T) {
	m := fixedMeasurer{}
	// 2.5mm per rune at 10pt, so 8 runes per 20mm line.
	lines := Wrap(m, "short abcdefghijklmnopqrstuvwxyz end", 20, fontBody)

	gt.Equal(t, lines, []string{"short", "abcdefgh", "ijklmnop", "qrstuvwx", "yz end"})
	for _, l := range lines {
		gt.True(t, m.StringWidth(l, fontBody) <= 20)
	}
}

func TestWrapEmpty(t *testing.T) {
	gt.Equal(t, len(Wrap(fixedMeasurer{}, "   ", 50, fontBody)), 0)
}

func TestWrapSingleLine(t *testing.T) {
	lines := Wrap(fixedMeasurer{}, "Traffic Safety Operations", 170, fontBody)
	gt.Equal(t, lines, []string{"Traffic Safety Operations"})
}
