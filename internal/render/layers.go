package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/arcanaland/hexcard/internal/assets"
	"github.com/arcanaland/hexcard/internal/card"
	"github.com/arcanaland/hexcard/internal/fonts"
	"github.com/arcanaland/hexcard/internal/layout"
)

// Fixed geometry of the card layers.
const (
	TitleHeight         = 50
	TypeHeight          = 25
	RulesHeight         = 60
	ExtendedRulesHeight = 120
	FlavorHeight        = 60

	// TextWidth is the usable width for wrapped text and the title
	// threshold beyond which the title is split.
	TextWidth = 225

	LineTop   = 12
	LinePitch = 12
)

var (
	titleFill  = color.NRGBA{R: 220, G: 200, B: 20, A: 100}
	typeFill   = color.NRGBA{R: 190, G: 150, B: 20, A: 220}
	rulesFill  = color.NRGBA{R: 225, G: 225, B: 225, A: 200}
	flavorFill = color.NRGBA{R: 225, G: 225, B: 225, A: 128}
	ruleLine   = color.NRGBA{A: 180}
	ink        = image.NewUniform(color.NRGBA{A: 255})
)

const center = assets.Size / 2

func (r *Renderer) titleLayer(f *fonts.Faces, title string) *image.NRGBA {
	img := imaging.New(assets.Size, TitleHeight, titleFill)

	if fonts.Measure(f.Title, title) < TextWidth {
		drawCentered(img, f.Title, title, center, 25)
	} else {
		first, second := layout.SplitHalves(title)
		r.logf("  title split: %q / %q", first, second)
		drawCentered(img, f.TitleReduced, first, center, 16)
		drawCentered(img, f.TitleReduced, second, center, 36)
	}

	hline(img, 1, 4, ruleLine)
	hline(img, 48, 4, ruleLine)
	return img
}

func typeLayer(f *fonts.Faces, types card.TypeSet) *image.NRGBA {
	img := imaging.New(assets.Size, TypeHeight, typeFill)
	drawCentered(img, f.Rules, types.String(), center, 13)
	return img
}

// PanelLines wraps text the way a rules or flavor panel lays it out.
func PanelLines(face font.Face, text string) []string {
	return layout.Wrap(text, TextWidth, fonts.Measurer(face))
}

func (r *Renderer) panel(height int, fill color.NRGBA, face font.Face, text string) *image.NRGBA {
	img := imaging.New(assets.Size, height, fill)

	lines := PanelLines(face, text)
	r.logf("  %d line(s): %q", len(lines), lines)
	for i, line := range lines {
		drawCentered(img, face, line, center, LineTop+LinePitch*i)
	}
	return img
}

// drawCentered draws text with its advance box centered on x and the
// middle of its ascent/descent span on y.
func drawCentered(dst draw.Image, face font.Face, text string, x, y int) {
	if text == "" {
		return
	}
	m := face.Metrics()
	width := font.MeasureString(face, text)
	d := &font.Drawer{
		Dst:  dst,
		Src:  ink,
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(x) - width/2,
			Y: fixed.I(y) + (m.Ascent-m.Descent)/2,
		},
	}
	d.DrawString(text)
}

// hline paints a full-width line of the given thickness centered on row y,
// replacing whatever is underneath.
func hline(dst *image.NRGBA, y, thickness int, c color.NRGBA) {
	top := y - thickness/2
	rect := image.Rect(0, top, dst.Bounds().Dx(), top+thickness).Intersect(dst.Bounds())
	if rect.Empty() {
		return
	}

	w, h := float32(rect.Dx()), float32(rect.Dy())
	z := vector.NewRasterizer(rect.Dx(), rect.Dy())
	z.DrawOp = draw.Src
	z.MoveTo(0, 0)
	z.LineTo(w, 0)
	z.LineTo(w, h)
	z.LineTo(0, h)
	z.ClosePath()
	z.Draw(dst, rect, image.NewUniform(c), image.Point{})
}
