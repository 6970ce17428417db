package report

import "strings"

// Measurer reports the rendered width of a string in millimetres.
type Measurer interface {
	StringWidth(text string, font Font) float64
}

// Wrap breaks text greedily into lines no wider than width. Words that do
// not fit on a line of their own are split between runes.
func Wrap(m Measurer, text string, width float64, font Font) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var (
		lines []string
		line  string
	)

	for _, word := range words {
		if line != "" {
			candidate := line + " " + word
			if m.StringWidth(candidate, font) <= width {
				line = candidate
				continue
			}
			lines = append(lines, line)
			line = ""
		}

		if m.StringWidth(word, font) <= width {
			line = word
			continue
		}

		chunks := splitWord(m, word, width, font)
		lines = append(lines, chunks[:len(chunks)-1]...)
		line = chunks[len(chunks)-1]
	}

	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

func splitWord(m Measurer, word string, width float64, font Font) []string {
	var (
		chunks  []string
		current []rune
	)

	for _, r := range word {
		next := append(current, r)
		if len(current) > 0 && m.StringWidth(string(next), font) > width {
			chunks = append(chunks, string(current))
			current = []rune{r}
			continue
		}
		current = next
	}

	return append(chunks, string(current))
}
