// Package layout breaks card text into lines that fit fixed pixel boxes.
// Nothing here knows about fonts or images; widths come from a MeasureFunc.
package layout

import "strings"

// BreakToken forces a line break when it appears as a word of its own.
// It is a literal two-character escape, not a newline.
const BreakToken = "/n"

// MeasureFunc returns the rendered width of text in pixels.
type MeasureFunc func(text string) float64

// Wrap splits text into lines whose measured width stays strictly below
// maxWidth. A word too wide for an empty line is placed there alone and never
// split. The last line is always returned, even when empty.
func Wrap(text string, maxWidth float64, measure MeasureFunc) []string {
	var lines []string
	var line []string

	flush := func() {
		lines = append(lines, strings.Join(line, " "))
		line = line[:0]
	}

	for _, word := range strings.Fields(text) {
		switch {
		case word == BreakToken:
			flush()
		case len(line) == 0:
			line = append(line, word)
		case measure(strings.Join(line, " ")+" "+word) < maxWidth:
			line = append(line, word)
		default:
			flush()
			line = append(line, word)
		}
	}
	flush()

	return lines
}

// SplitHalves breaks text into two lines by word count, the first line
// taking the extra word when the count is odd.
func SplitHalves(text string) (string, string) {
	words := strings.Fields(text)
	mid := (len(words) + 1) / 2
	return strings.Join(words[:mid], " "), strings.Join(words[mid:], " ")
}

// Capacity is how many lines of the given pitch fit in a panel of height h
// when the first line is centered at top.
func Capacity(h, top, pitch int) int {
	if h < top {
		return 0
	}
	// a line counts while at least half its pitch stays inside the panel
	return (h-top-pitch/2)/pitch + 1
}
