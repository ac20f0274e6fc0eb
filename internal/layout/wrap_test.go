package layout

import (
	"reflect"
	"strings"
	"testing"
)

// monospace measures every rune as 6px.
func monospace(s string) float64 {
	return float64(len([]rune(s))) * 6
}

func TestWrapShortTextSingleLine(t *testing.T) {
	got := Wrap("  Grants +1 to   adjacent hexes. ", 1000, monospace)
	want := []string{"Grants +1 to adjacent hexes."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Wrap = %q, want %q", got, want)
	}
}

func TestWrapForcedBreak(t *testing.T) {
	got := Wrap("aaa bbb ccc /n ddd", 1000, monospace)
	want := []string{"aaa bbb ccc", "ddd"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Wrap = %q, want %q", got, want)
	}
}

func TestWrapLongWordNotSplit(t *testing.T) {
	word := "supercalifragilisticexpialidocious"
	got := Wrap(word, 10, monospace)
	if len(got) != 1 || got[0] != word {
		t.Fatalf("Wrap = %q, want [%q]", got, word)
	}
}

func TestWrapLongWordAfterShortWords(t *testing.T) {
	got := Wrap("a b supercalifragilisticexpialidocious c", 60, monospace)
	want := []string{"a b", "supercalifragilisticexpialidocious", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Wrap = %q, want %q", got, want)
	}
}

func TestWrapWidthIsStrict(t *testing.T) {
	// " bbb" appended to "aaa" measures exactly 7 runes = 42px
	tests := []struct {
		width float64
		want  []string
	}{
		{width: 42, want: []string{"aaa", "bbb"}},
		{width: 43, want: []string{"aaa bbb"}},
	}
	for _, tt := range tests {
		got := Wrap("aaa bbb", tt.width, monospace)
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("Wrap(width=%v) = %q, want %q", tt.width, got, tt.want)
		}
	}
}

func TestWrapEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{""}},
		{"whitespace", " \n\t ", []string{""}},
		{"leading break", "/n aaa", []string{"", "aaa"}},
		{"trailing break", "aaa /n", []string{"aaa", ""}},
		{"double break", "aaa /n /n bbb", []string{"aaa", "", "bbb"}},
		{"break glued to word", "aaa/n bbb", []string{"aaa/n bbb"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, 1000, monospace)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Wrap(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestWrapDeterministic(t *testing.T) {
	text := "The river bends twice before it reaches the sea /n and once after."
	first := Wrap(text, 120, monospace)
	for i := 0; i < 3; i++ {
		if got := Wrap(text, 120, monospace); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: Wrap = %q, want %q", i, got, first)
		}
	}
	for _, line := range first {
		if monospace(line) >= 120 && len(strings.Fields(line)) > 1 {
			t.Fatalf("line %q is %vpx wide", line, monospace(line))
		}
	}
}

func TestSplitHalves(t *testing.T) {
	tests := []struct {
		title         string
		first, second string
	}{
		{"The Old Mill On Hill", "The Old Mill", "On Hill"},
		{"Lake of the Frozen Kings", "Lake of the", "Frozen Kings"},
		{"Greenwood", "Greenwood", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		first, second := SplitHalves(tt.title)
		if first != tt.first || second != tt.second {
			t.Fatalf("SplitHalves(%q) = %q, %q; want %q, %q", tt.title, first, second, tt.first, tt.second)
		}
	}
}

func TestCapacity(t *testing.T) {
	tests := []struct {
		height, want int
	}{
		{60, 4},
		{120, 9},
		{5, 0},
	}
	for _, tt := range tests {
		if got := Capacity(tt.height, 12, 12); got != tt.want {
			t.Fatalf("Capacity(%d) = %d, want %d", tt.height, got, tt.want)
		}
	}
}
