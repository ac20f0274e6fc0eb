// Package preview turns a rendered card into ANSI half-block art for the terminal.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// Backdrop is blended under transparent pixels, matching a dark terminal.
var Backdrop = colorful.Color{R: 0, G: 0, B: 0}

// ToANSI converts img to width x height character cells. Each cell shows
// two stacked pixels with the upper half block.
func ToANSI(img image.Image, width, height int) string {
	// Resize image to desired dimensions (doubled for half-block characters)
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			upper := averageColor(colorAt(resized, x, y), colorAt(resized, x+1, y))
			lower := averageColor(colorAt(resized, x, y+1), colorAt(resized, x+1, y+1))
			buffer.WriteString(cell('▀', upper, lower))
		}
		buffer.WriteString("\n")
	}

	return buffer.String()
}

// colorAt returns the pixel flattened onto Backdrop; out of bounds is Backdrop.
func colorAt(img image.Image, x, y int) colorful.Color {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return Backdrop
	}
	nc := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	if nc.A == 0 {
		return Backdrop
	}
	c := colorful.Color{R: float64(nc.R) / 255, G: float64(nc.G) / 255, B: float64(nc.B) / 255}
	return Backdrop.BlendRgb(c, float64(nc.A)/255)
}

func averageColor(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	n := float64(len(colors))
	return colorful.Color{R: r / n, G: g / n, B: b / n}
}

func cell(char rune, fg, bg colorful.Color) string {
	r1, g1, b1 := fg.Clamped().RGB255()
	r2, g2, b2 := bg.Clamped().RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m", r1, g1, b1, r2, g2, b2, char)
}

// Size fits a square image into a terminal columns wide, leaving margin
// columns free. Cells are twice as tall as wide, so rows equal columns/2.
func Size(columns, margin int) (int, int) {
	w := columns - margin
	if w > 64 {
		w = 64
	}
	if w < 8 {
		w = 8
	}
	return w, w / 2
}
